package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/ledgerkit/ledgerd/internal/core/domain"
	portssvc "github.com/ledgerkit/ledgerd/internal/core/ports/services"
	"github.com/ledgerkit/ledgerd/internal/core/services"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockReportingRepo *MockReportingRepository
	service           portssvc.ReportingSvcFacade
	ctx               context.Context
}

func (s *ReportingServiceTestSuite) SetupTest() {
	s.mockReportingRepo = new(MockReportingRepository)
	s.service = services.NewReportingService(s.mockReportingRepo)
	s.ctx = context.Background()
}

func (s *ReportingServiceTestSuite) TestReconciliationReport_ExplicitDate() {
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	totals := map[string]int64{"acc-1": 500, "acc-2": -500}
	anomalies := []domain.ReconciliationAnomaly{
		{TransferID: "tr-broken", Amount: 500, EntryCount: 1, Reason: domain.AnomalyReasonMissingEntries},
	}

	s.mockReportingRepo.On("DailyFinalizedTotals", s.ctx, day).Return(totals, nil).Once()
	s.mockReportingRepo.On("FindEntryCountAnomalies", s.ctx, day).Return(anomalies, nil).Once()

	report, err := s.service.ReconciliationReport(s.ctx, &day)

	s.Require().NoError(err)
	s.Equal("2026-03-14", report.Date)
	s.Equal(totals, report.Totals)
	s.Require().Len(report.Anomalies, 1)
	s.Equal("tr-broken", report.Anomalies[0].TransferID)
	s.Equal(1, report.Anomalies[0].EntryCount)
	s.mockReportingRepo.AssertExpectations(s.T())
}

func (s *ReportingServiceTestSuite) TestReconciliationReport_DefaultsToToday() {
	s.mockReportingRepo.On("DailyFinalizedTotals", s.ctx, mock.AnythingOfType("time.Time")).
		Return(map[string]int64{}, nil).Once()
	s.mockReportingRepo.On("FindEntryCountAnomalies", s.ctx, mock.AnythingOfType("time.Time")).
		Return([]domain.ReconciliationAnomaly{}, nil).Once()

	report, err := s.service.ReconciliationReport(s.ctx, nil)

	s.Require().NoError(err)
	s.Equal(time.Now().UTC().Format("2006-01-02"), report.Date)
	s.Empty(report.Anomalies)
	s.Empty(report.Totals)
}

func (s *ReportingServiceTestSuite) TestReconciliationReport_CleanDayHasNoAnomalies() {
	day := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	s.mockReportingRepo.On("DailyFinalizedTotals", s.ctx, day).
		Return(map[string]int64{"acc-1": 100}, nil).Once()
	s.mockReportingRepo.On("FindEntryCountAnomalies", s.ctx, day).
		Return([]domain.ReconciliationAnomaly{}, nil).Once()

	report, err := s.service.ReconciliationReport(s.ctx, &day)

	s.Require().NoError(err)
	s.Empty(report.Anomalies)
}

func (s *ReportingServiceTestSuite) TestReconciliationReport_TotalsError() {
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	repoErr := errors.New("query timeout")
	s.mockReportingRepo.On("DailyFinalizedTotals", s.ctx, day).Return(nil, repoErr).Once()

	_, err := s.service.ReconciliationReport(s.ctx, &day)

	s.Require().Error(err)
	s.ErrorIs(err, repoErr)
	s.mockReportingRepo.AssertNotCalled(s.T(), "FindEntryCountAnomalies", mock.Anything, mock.Anything)
}

func (s *ReportingServiceTestSuite) TestReconciliationReport_AnomalyScanError() {
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	repoErr := errors.New("query timeout")
	s.mockReportingRepo.On("DailyFinalizedTotals", s.ctx, day).Return(map[string]int64{}, nil).Once()
	s.mockReportingRepo.On("FindEntryCountAnomalies", s.ctx, day).Return(nil, repoErr).Once()

	_, err := s.service.ReconciliationReport(s.ctx, &day)

	s.Require().Error(err)
	s.ErrorIs(err, repoErr)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
