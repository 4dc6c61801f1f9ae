package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ledgerkit/ledgerd/internal/apperrors"
	"github.com/ledgerkit/ledgerd/internal/core/domain"
	portsrepo "github.com/ledgerkit/ledgerd/internal/core/ports/repositories"
	portssvc "github.com/ledgerkit/ledgerd/internal/core/ports/services"
	"github.com/ledgerkit/ledgerd/internal/dto"
)

// entryService provides ledger entry operations and balance derivation.
type entryService struct {
	BaseService
	entryRepo portsrepo.EntryRepositoryFacade
}

// NewEntryService creates a new EntryService.
func NewEntryService(entryRepo portsrepo.EntryRepositoryFacade) portssvc.EntrySvcFacade {
	return &entryService{entryRepo: entryRepo}
}

// Ensure entryService implements the portssvc.EntrySvcFacade interface
var _ portssvc.EntrySvcFacade = (*entryService)(nil)

// CreateEntry records a standalone bookkeeping entry. Entries created through
// transfers never take this path; the transfer engine writes its pair itself.
func (s *entryService) CreateEntry(ctx context.Context, req dto.CreateEntryRequest) (*domain.LedgerEntry, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: entry amount must be positive", apperrors.ErrValidation)
	}

	status := domain.EntryStatus(req.Status)
	if status == "" {
		status = domain.EntryPending
	}

	entry := domain.LedgerEntry{
		EntryID:    uuid.NewString(),
		TransferID: req.TransferID,
		AccountID:  req.AccountID,
		Amount:     req.Amount,
		EntryType:  domain.EntryType(req.EntryType),
		Status:     status,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.entryRepo.SaveEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "failed to save ledger entry", slog.String("account_id", req.AccountID))
		return nil, err
	}

	s.LogInfo(ctx, "ledger entry created",
		slog.String("entry_id", entry.EntryID),
		slog.String("account_id", entry.AccountID),
		slog.String("entry_type", string(entry.EntryType)),
	)
	return &entry, nil
}

// ListEntriesByAccount returns an account's entries in creation order.
func (s *entryService) ListEntriesByAccount(ctx context.Context, accountID string, includePending bool) ([]domain.LedgerEntry, error) {
	return s.entryRepo.FindEntriesByAccountID(ctx, accountID, includePending)
}

// GetBalance folds an account's entries starting from zero: credits add to
// the running total, debits subtract. Always a fresh scan of committed state,
// never cached.
func (s *entryService) GetBalance(ctx context.Context, accountID string, includePending bool) (int64, error) {
	entries, err := s.entryRepo.FindEntriesByAccountID(ctx, accountID, includePending)
	if err != nil {
		return 0, fmt.Errorf("failed to load entries for balance of account %s: %w", accountID, err)
	}

	var balance int64
	for _, entry := range entries {
		balance += entry.SignedAmount()
	}
	return balance, nil
}
