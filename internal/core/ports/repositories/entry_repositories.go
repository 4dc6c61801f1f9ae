package repositories

import (
	"context"

	"github.com/ledgerkit/ledgerd/internal/core/domain"
)

// EntryReader defines read operations for ledger entry data.
type EntryReader interface {
	// FindEntriesByAccountID retrieves all entries for an account in ascending
	// creation order. When includePending is false, only finalized entries are
	// returned.
	FindEntriesByAccountID(ctx context.Context, accountID string, includePending bool) ([]domain.LedgerEntry, error)

	// FindEntriesByTransferID retrieves all entries tied to a transfer in
	// ascending creation order.
	FindEntriesByTransferID(ctx context.Context, transferID string) ([]domain.LedgerEntry, error)
}

// EntryWriter defines write operations for ledger entry data.
type EntryWriter interface {
	// SaveEntry persists a single ledger entry, used for standalone
	// bookkeeping entries not tied to a transfer.
	SaveEntry(ctx context.Context, entry domain.LedgerEntry) error
}

// EntryRepositoryFacade combines all entry-related repository interfaces.
type EntryRepositoryFacade interface {
	EntryReader
	EntryWriter
}
