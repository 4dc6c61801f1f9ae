package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/ledgerkit/ledgerd/internal/apperrors"
	"github.com/ledgerkit/ledgerd/internal/core/domain"
	portssvc "github.com/ledgerkit/ledgerd/internal/core/ports/services"
	"github.com/ledgerkit/ledgerd/internal/core/services"
	"github.com/ledgerkit/ledgerd/internal/dto"
)

type TransferServiceTestSuite struct {
	suite.Suite
	mockTransferRepo *MockTransferRepository
	mockEntryRepo    *MockEntryRepository
	service          portssvc.TransferSvcFacade
	ctx              context.Context
}

func (s *TransferServiceTestSuite) SetupTest() {
	s.mockTransferRepo = new(MockTransferRepository)
	s.mockEntryRepo = new(MockEntryRepository)
	s.service = services.NewTransferService(s.mockTransferRepo, s.mockEntryRepo, "USD")
	s.ctx = context.Background()
}

func (s *TransferServiceTestSuite) TestCreateTransfer_Success() {
	req := dto.CreateTransferRequest{
		FromAccountID: "acc-from",
		ToAccountID:   "acc-to",
		Amount:        1000,
		Currency:      "EUR",
	}

	var capturedTransfer domain.Transfer
	var capturedEntries []domain.LedgerEntry

	s.mockTransferRepo.On("CreateTransferWithEntries", s.ctx, mock.AnythingOfType("domain.Transfer"), mock.AnythingOfType("[]domain.LedgerEntry")).
		Run(func(args mock.Arguments) {
			capturedTransfer = args.Get(1).(domain.Transfer)
			capturedEntries = args.Get(2).([]domain.LedgerEntry)
		}).
		Return(&domain.Transfer{TransferID: "tr-1", Amount: 1000, Currency: "EUR", Status: domain.TransferPending}, nil).Once()

	created, err := s.service.CreateTransfer(s.ctx, req)

	s.Require().NoError(err)
	s.Equal("tr-1", created.TransferID)
	s.Equal(domain.TransferPending, created.Status)

	// The engine builds exactly one debit on the source and one credit on the
	// destination, both for the transfer amount, both pending.
	s.Require().Len(capturedEntries, 2)
	s.Equal(domain.Debit, capturedEntries[0].EntryType)
	s.Equal("acc-from", capturedEntries[0].AccountID)
	s.Equal(domain.Credit, capturedEntries[1].EntryType)
	s.Equal("acc-to", capturedEntries[1].AccountID)
	for _, entry := range capturedEntries {
		s.Equal(int64(1000), entry.Amount)
		s.Equal(domain.EntryPending, entry.Status)
		s.NotEmpty(entry.EntryID)
	}
	s.NotEqual(capturedEntries[0].AccountID, capturedEntries[1].AccountID)

	s.Equal(domain.TransferPending, capturedTransfer.Status)
	s.Equal("EUR", capturedTransfer.Currency)
	s.Nil(capturedTransfer.IdempotencyKey)
	s.NotEmpty(capturedTransfer.TransferID)

	s.mockTransferRepo.AssertExpectations(s.T())
}

func (s *TransferServiceTestSuite) TestCreateTransfer_DefaultsCurrency() {
	var capturedTransfer domain.Transfer
	s.mockTransferRepo.On("CreateTransferWithEntries", s.ctx, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			capturedTransfer = args.Get(1).(domain.Transfer)
		}).
		Return(&domain.Transfer{TransferID: "tr-2", Currency: "USD"}, nil).Once()

	_, err := s.service.CreateTransfer(s.ctx, dto.CreateTransferRequest{
		FromAccountID: "a", ToAccountID: "b", Amount: 5,
	})

	s.Require().NoError(err)
	s.Equal("USD", capturedTransfer.Currency)
}

func (s *TransferServiceTestSuite) TestCreateTransfer_RejectsNonPositiveAmount() {
	for _, amount := range []int64{0, -1, -1000} {
		_, err := s.service.CreateTransfer(s.ctx, dto.CreateTransferRequest{
			FromAccountID: "a", ToAccountID: "b", Amount: amount,
		})
		s.Require().Error(err)
		s.ErrorIs(err, apperrors.ErrValidation)
	}
	s.mockTransferRepo.AssertNotCalled(s.T(), "CreateTransferWithEntries", mock.Anything, mock.Anything, mock.Anything)
}

func (s *TransferServiceTestSuite) TestCreateTransfer_IdempotentReplayReturnsSameTransfer() {
	key := "k1"
	existing := &domain.Transfer{
		TransferID:     "tr-dedup",
		IdempotencyKey: &key,
		Amount:         500,
		Currency:       "USD",
		Status:         domain.TransferPending,
	}

	// The repository resolves both calls to the transfer the first call
	// created; the service must pass the key through untouched.
	s.mockTransferRepo.On("CreateTransferWithEntries", s.ctx, mock.MatchedBy(func(t domain.Transfer) bool {
		return t.IdempotencyKey != nil && *t.IdempotencyKey == key
	}), mock.Anything).Return(existing, nil).Twice()

	req := dto.CreateTransferRequest{
		FromAccountID: "a", ToAccountID: "b", Amount: 500, IdempotencyKey: &key,
	}

	first, err := s.service.CreateTransfer(s.ctx, req)
	s.Require().NoError(err)
	second, err := s.service.CreateTransfer(s.ctx, req)
	s.Require().NoError(err)

	s.Equal(first.TransferID, second.TransferID)
	s.mockTransferRepo.AssertExpectations(s.T())
}

func (s *TransferServiceTestSuite) TestCreateTransfer_RepositoryErrorPropagates() {
	repoErr := errors.New("connection refused")
	s.mockTransferRepo.On("CreateTransferWithEntries", s.ctx, mock.Anything, mock.Anything).
		Return(nil, repoErr).Once()

	_, err := s.service.CreateTransfer(s.ctx, dto.CreateTransferRequest{
		FromAccountID: "a", ToAccountID: "b", Amount: 10,
	})

	s.Require().Error(err)
	s.ErrorIs(err, repoErr)
}

func (s *TransferServiceTestSuite) TestFinalizeTransfer_Delegates() {
	s.mockTransferRepo.On("FinalizeTransfer", s.ctx, "tr-1", mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	err := s.service.FinalizeTransfer(s.ctx, "tr-1")

	s.Require().NoError(err)
	s.mockTransferRepo.AssertExpectations(s.T())
}

func (s *TransferServiceTestSuite) TestFinalizeTransfer_RepeatCallsAreHarmless() {
	// Finalize is naturally idempotent: the repository applies the same end
	// state each time and reports no error.
	s.mockTransferRepo.On("FinalizeTransfer", s.ctx, "tr-1", mock.AnythingOfType("time.Time")).
		Return(nil).Times(3)

	for i := 0; i < 3; i++ {
		s.Require().NoError(s.service.FinalizeTransfer(s.ctx, "tr-1"))
	}
	s.mockTransferRepo.AssertExpectations(s.T())
}

func (s *TransferServiceTestSuite) TestFinalizeTransfer_NotFound() {
	s.mockTransferRepo.On("FinalizeTransfer", s.ctx, "missing", mock.AnythingOfType("time.Time")).
		Return(apperrors.ErrNotFound).Once()

	err := s.service.FinalizeTransfer(s.ctx, "missing")

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *TransferServiceTestSuite) TestGetTransferWithEntries() {
	now := time.Now().UTC()
	transferID := "tr-9"
	transfer := &domain.Transfer{TransferID: transferID, Amount: 250, Currency: "USD", Status: domain.TransferFinalized, CreatedAt: now}
	entries := []domain.LedgerEntry{
		{EntryID: "e1", TransferID: &transferID, AccountID: "a", Amount: 250, EntryType: domain.Debit, Status: domain.EntryFinalized},
		{EntryID: "e2", TransferID: &transferID, AccountID: "b", Amount: 250, EntryType: domain.Credit, Status: domain.EntryFinalized},
	}

	s.mockTransferRepo.On("FindTransferByID", s.ctx, transferID).Return(transfer, nil).Once()
	s.mockEntryRepo.On("FindEntriesByTransferID", s.ctx, transferID).Return(entries, nil).Once()

	gotTransfer, gotEntries, err := s.service.GetTransferWithEntries(s.ctx, transferID)

	s.Require().NoError(err)
	s.Equal(transfer, gotTransfer)
	s.Len(gotEntries, 2)
}

func (s *TransferServiceTestSuite) TestGetTransferWithEntries_NotFound() {
	s.mockTransferRepo.On("FindTransferByID", s.ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, _, err := s.service.GetTransferWithEntries(s.ctx, "missing")

	s.Require().Error(err)
	assert.ErrorIs(s.T(), err, apperrors.ErrNotFound)
	s.mockEntryRepo.AssertNotCalled(s.T(), "FindEntriesByTransferID", mock.Anything, mock.Anything)
}

func TestTransferServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransferServiceTestSuite))
}
