package repositories

import (
	"context"
	"time"

	"github.com/ledgerkit/ledgerd/internal/core/domain"
)

// ReportingRepository defines the read-only queries behind the daily
// reconciliation report.
type ReportingRepository interface {
	// DailyFinalizedTotals returns, for every account with at least one
	// finalized entry created on the given UTC day, the signed sum of those
	// entries (credits positive, debits negative).
	DailyFinalizedTotals(ctx context.Context, day time.Time) (map[string]int64, error)

	// FindEntryCountAnomalies returns every transfer created on the given UTC
	// day whose associated entry count is not exactly two.
	FindEntryCountAnomalies(ctx context.Context, day time.Time) ([]domain.ReconciliationAnomaly, error)
}
