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

// transferService validates caller input and drives the transfer engine.
type transferService struct {
	BaseService
	transferRepo    portsrepo.TransferRepositoryFacade
	entryRepo       portsrepo.EntryRepositoryFacade
	defaultCurrency string
}

// NewTransferService creates a new TransferService.
func NewTransferService(transferRepo portsrepo.TransferRepositoryFacade, entryRepo portsrepo.EntryRepositoryFacade, defaultCurrency string) portssvc.TransferSvcFacade {
	return &transferService{
		transferRepo:    transferRepo,
		entryRepo:       entryRepo,
		defaultCurrency: defaultCurrency,
	}
}

// Ensure transferService implements the portssvc.TransferSvcFacade interface
var _ portssvc.TransferSvcFacade = (*transferService)(nil)

// CreateTransfer validates the request and delegates atomic creation of the
// transfer and its balancing entry pair (debit on the source account, credit
// on the destination) to the repository. Replays carrying the same idempotency
// key resolve to the transfer the first call created.
func (s *transferService) CreateTransfer(ctx context.Context, req dto.CreateTransferRequest) (*domain.Transfer, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: transfer amount must be positive", apperrors.ErrValidation)
	}

	currency := req.Currency
	if currency == "" {
		currency = s.defaultCurrency
	}

	now := time.Now().UTC()
	transfer := domain.Transfer{
		TransferID:     uuid.NewString(),
		IdempotencyKey: req.IdempotencyKey,
		Reference:      req.Reference,
		Amount:         req.Amount,
		Currency:       currency,
		Status:         domain.TransferPending,
		CreatedAt:      now,
	}

	entries := []domain.LedgerEntry{
		{
			EntryID:   uuid.NewString(),
			AccountID: req.FromAccountID,
			Amount:    req.Amount,
			EntryType: domain.Debit,
			Status:    domain.EntryPending,
			CreatedAt: now,
		},
		{
			EntryID:   uuid.NewString(),
			AccountID: req.ToAccountID,
			Amount:    req.Amount,
			EntryType: domain.Credit,
			Status:    domain.EntryPending,
			CreatedAt: now,
		},
	}

	created, err := s.transferRepo.CreateTransferWithEntries(ctx, transfer, entries)
	if err != nil {
		s.LogError(ctx, err, "failed to create transfer",
			slog.String("from_account_id", req.FromAccountID),
			slog.String("to_account_id", req.ToAccountID),
			slog.Int64("amount", req.Amount),
		)
		return nil, err
	}

	s.LogInfo(ctx, "transfer created",
		slog.String("transfer_id", created.TransferID),
		slog.Int64("amount", created.Amount),
		slog.String("status", string(created.Status)),
	)
	return created, nil
}

// GetTransferWithEntries retrieves a transfer and its entry lines.
func (s *transferService) GetTransferWithEntries(ctx context.Context, transferID string) (*domain.Transfer, []domain.LedgerEntry, error) {
	transfer, err := s.transferRepo.FindTransferByID(ctx, transferID)
	if err != nil {
		return nil, nil, err
	}

	entries, err := s.entryRepo.FindEntriesByTransferID(ctx, transferID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to find entries for transfer %s: %w", transferID, err)
	}

	return transfer, entries, nil
}

// FinalizeTransfer transitions a transfer and its entries to finalized.
// Safe to call repeatedly; the end state does not change after the first call.
func (s *transferService) FinalizeTransfer(ctx context.Context, transferID string) error {
	if err := s.transferRepo.FinalizeTransfer(ctx, transferID, time.Now().UTC()); err != nil {
		s.LogError(ctx, err, "failed to finalize transfer", slog.String("transfer_id", transferID))
		return err
	}

	s.LogInfo(ctx, "transfer finalized", slog.String("transfer_id", transferID))
	return nil
}
