package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ledgerkit/ledgerd/internal/apperrors"
	"github.com/ledgerkit/ledgerd/internal/core/domain"
	portsrepo "github.com/ledgerkit/ledgerd/internal/core/ports/repositories"
	portssvc "github.com/ledgerkit/ledgerd/internal/core/ports/services"
	"github.com/ledgerkit/ledgerd/internal/dto"
)

// accountService provides the account directory operations.
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new AccountService.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: accountRepo}
}

// Ensure accountService implements the portssvc.AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// CreateAccount creates an account. The underlying insert is a no-op when the
// ID already exists, so the returned record is the logical account either way.
func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: account name is required", apperrors.ErrValidation)
	}

	accountID := req.AccountID
	if accountID == "" {
		accountID = uuid.NewString()
	}

	account := domain.Account{
		AccountID: accountID,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "failed to save account", slog.String("account_id", accountID))
		return nil, err
	}

	// Read back so a pre-existing account returns its original record.
	persisted, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to read back account %s: %w", accountID, err)
	}

	s.LogInfo(ctx, "account created", slog.String("account_id", persisted.AccountID))
	return persisted, nil
}

// GetAccountByID retrieves an account by its unique identifier.
func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	return s.accountRepo.FindAccountByID(ctx, accountID)
}
