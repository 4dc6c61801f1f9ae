package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/ledgerkit/ledgerd/internal/core/domain"
	portsrepo "github.com/ledgerkit/ledgerd/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// reportingRepository implements the read-only reconciliation queries.
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// DailyFinalizedTotals returns the signed sum of finalized entries created on
// the given UTC day, grouped by account (credits positive, debits negative).
func (r *reportingRepository) DailyFinalizedTotals(ctx context.Context, day time.Time) (map[string]int64, error) {
	query := `
		SELECT
			account_id,
			SUM(CASE WHEN entry_type = 'CREDIT' THEN amount ELSE -amount END) AS balance_change
		FROM ledger_entries
		WHERE status = 'FINALIZED'
			AND (created_at AT TIME ZONE 'UTC')::date = $1::date
		GROUP BY account_id;
	`
	rows, err := r.Pool.Query(ctx, query, day.UTC())
	if err != nil {
		return nil, fmt.Errorf("error querying daily finalized totals: %w", err)
	}
	defer rows.Close()

	totals := map[string]int64{}
	for rows.Next() {
		var accountID string
		var change int64
		if err := rows.Scan(&accountID, &change); err != nil {
			return nil, fmt.Errorf("error scanning daily total row: %w", err)
		}
		totals[accountID] = change
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating daily total rows: %w", err)
	}

	return totals, nil
}

// FindEntryCountAnomalies returns every transfer created on the given UTC day
// whose entry count is not exactly two. Zero entries means creation stopped
// before the pair was written (or a key-only placeholder); more than two is a
// data-integrity violation.
func (r *reportingRepository) FindEntryCountAnomalies(ctx context.Context, day time.Time) ([]domain.ReconciliationAnomaly, error) {
	query := `
		SELECT t.transfer_id, t.amount, COUNT(e.entry_id) AS entry_count
		FROM transfers t
		LEFT JOIN ledger_entries e ON e.transfer_id = t.transfer_id
		WHERE (t.created_at AT TIME ZONE 'UTC')::date = $1::date
		GROUP BY t.transfer_id, t.amount
		HAVING COUNT(e.entry_id) <> 2;
	`
	rows, err := r.Pool.Query(ctx, query, day.UTC())
	if err != nil {
		return nil, fmt.Errorf("error querying entry count anomalies: %w", err)
	}
	defer rows.Close()

	anomalies := []domain.ReconciliationAnomaly{}
	for rows.Next() {
		var a domain.ReconciliationAnomaly
		if err := rows.Scan(&a.TransferID, &a.Amount, &a.EntryCount); err != nil {
			return nil, fmt.Errorf("error scanning anomaly row: %w", err)
		}
		a.Reason = domain.AnomalyReasonMissingEntries
		anomalies = append(anomalies, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating anomaly rows: %w", err)
	}

	return anomalies, nil
}
