package repositories

import (
	"context"
	"time"

	"github.com/ledgerkit/ledgerd/internal/core/domain"
)

// TransferReader defines read operations for transfer data.
type TransferReader interface {
	// FindTransferByID retrieves a specific transfer by its unique identifier.
	FindTransferByID(ctx context.Context, transferID string) (*domain.Transfer, error)
}

// TransferWriter defines write operations for transfer data.
type TransferWriter interface {
	// CreateTransferWithEntries atomically creates (or, for an already-seen
	// idempotency key, reuses) a transfer row and, when the transfer has no
	// entries yet, inserts the supplied balancing entry pair. The whole
	// operation runs inside one database transaction and returns the
	// transfer's persisted state.
	CreateTransferWithEntries(ctx context.Context, transfer domain.Transfer, entries []domain.LedgerEntry) (*domain.Transfer, error)

	// FinalizeTransfer marks the transfer and every entry referencing it as
	// finalized within one database transaction. Re-invoking on an already
	// finalized transfer is a no-op with the same end state.
	FinalizeTransfer(ctx context.Context, transferID string, finalizedAt time.Time) error
}

// TransferRepositoryFacade combines all transfer-related repository interfaces.
type TransferRepositoryFacade interface {
	TransferReader
	TransferWriter
}
