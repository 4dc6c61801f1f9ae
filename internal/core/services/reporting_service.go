package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ledgerkit/ledgerd/internal/core/domain"
	portsrepo "github.com/ledgerkit/ledgerd/internal/core/ports/repositories"
	portssvc "github.com/ledgerkit/ledgerd/internal/core/ports/services"
)

// reportingService assembles the daily reconciliation report.
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new ReportingService.
func NewReportingService(reportingRepo portsrepo.ReportingRepository) portssvc.ReportingSvcFacade {
	return &reportingService{reportingRepo: reportingRepo}
}

// Ensure reportingService implements the portssvc.ReportingSvcFacade interface
var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// ReconciliationReport builds the integrity report for one UTC calendar day:
// net finalized movement per account, plus every transfer created that day
// whose entry pair is broken. Read-only; safe to run alongside any other
// operation.
func (s *reportingService) ReconciliationReport(ctx context.Context, date *time.Time) (*domain.ReconciliationReport, error) {
	day := time.Now().UTC()
	if date != nil {
		day = date.UTC()
	}

	totals, err := s.reportingRepo.DailyFinalizedTotals(ctx, day)
	if err != nil {
		s.LogError(ctx, err, "failed to compute daily finalized totals")
		return nil, fmt.Errorf("failed to compute daily totals: %w", err)
	}

	anomalies, err := s.reportingRepo.FindEntryCountAnomalies(ctx, day)
	if err != nil {
		s.LogError(ctx, err, "failed to scan for entry count anomalies")
		return nil, fmt.Errorf("failed to scan for anomalies: %w", err)
	}

	report := &domain.ReconciliationReport{
		Date:      day.Format("2006-01-02"),
		Totals:    totals,
		Anomalies: anomalies,
	}

	s.LogInfo(ctx, "reconciliation report built",
		slog.String("date", report.Date),
		slog.Int("accounts", len(report.Totals)),
		slog.Int("anomalies", len(report.Anomalies)),
	)
	return report, nil
}
