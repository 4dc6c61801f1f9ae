package services

import (
	"context"
	"time"

	"github.com/ledgerkit/ledgerd/internal/core/domain"
	"github.com/ledgerkit/ledgerd/internal/dto"
)

// AccountSvcFacade defines the account directory operations.
type AccountSvcFacade interface {
	// CreateAccount creates an account, or returns the existing record when
	// the supplied ID is already present.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)

	// GetAccountByID retrieves an account by its unique identifier.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
}

// TransferSvcFacade defines the transfer engine operations.
type TransferSvcFacade interface {
	// CreateTransfer validates the request and atomically creates (or, under
	// idempotency-key replay, reuses) a transfer with its balancing entry pair.
	CreateTransfer(ctx context.Context, req dto.CreateTransferRequest) (*domain.Transfer, error)

	// GetTransferWithEntries retrieves a transfer and its entry lines.
	GetTransferWithEntries(ctx context.Context, transferID string) (*domain.Transfer, []domain.LedgerEntry, error)

	// FinalizeTransfer transitions a transfer and its entries to finalized.
	FinalizeTransfer(ctx context.Context, transferID string) error
}

// EntrySvcFacade defines ledger entry operations and balance derivation.
type EntrySvcFacade interface {
	// CreateEntry records a standalone bookkeeping entry.
	CreateEntry(ctx context.Context, req dto.CreateEntryRequest) (*domain.LedgerEntry, error)

	// ListEntriesByAccount returns an account's entries in creation order.
	ListEntriesByAccount(ctx context.Context, accountID string, includePending bool) ([]domain.LedgerEntry, error)

	// GetBalance derives the account balance by folding its entries
	// (credits add, debits subtract).
	GetBalance(ctx context.Context, accountID string, includePending bool) (int64, error)
}

// ReportingSvcFacade defines the daily reconciliation report.
type ReportingSvcFacade interface {
	// ReconciliationReport builds the integrity report for the given UTC day;
	// a nil date means the current UTC date.
	ReconciliationReport(ctx context.Context, date *time.Time) (*domain.ReconciliationReport, error)
}

// ServiceContainer holds all service facades for dependency injection.
type ServiceContainer struct {
	Account   AccountSvcFacade
	Transfer  TransferSvcFacade
	Entry     EntrySvcFacade
	Reporting ReportingSvcFacade
}
