package pgsql

import (
	"context"
	"fmt"

	"github.com/ledgerkit/ledgerd/internal/core/domain"
	portsrepo "github.com/ledgerkit/ledgerd/internal/core/ports/repositories"
	"github.com/ledgerkit/ledgerd/internal/models"
	"github.com/ledgerkit/ledgerd/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxEntryRepository struct {
	BaseRepository
}

// newPgxEntryRepository creates a new repository for ledger entry data.
func newPgxEntryRepository(pool *pgxpool.Pool) portsrepo.EntryRepositoryFacade {
	return &PgxEntryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxEntryRepository implements portsrepo.EntryRepositoryFacade
var _ portsrepo.EntryRepositoryFacade = (*PgxEntryRepository)(nil)

// SaveEntry inserts a single ledger entry.
func (r *PgxEntryRepository) SaveEntry(ctx context.Context, entry domain.LedgerEntry) error {
	modelEntry := mapping.ToModelLedgerEntry(entry)

	query := `
		INSERT INTO ledger_entries (entry_id, transfer_id, account_id, amount, entry_type, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelEntry.EntryID,
		modelEntry.TransferID,
		modelEntry.AccountID,
		modelEntry.Amount,
		modelEntry.EntryType,
		modelEntry.Status,
		modelEntry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save ledger entry %s: %w", modelEntry.EntryID, err)
	}
	return nil
}

// FindEntriesByAccountID retrieves all entries for an account in ascending
// creation order. When includePending is false only finalized entries are
// returned, which is the read path for finalized-only balances.
func (r *PgxEntryRepository) FindEntriesByAccountID(ctx context.Context, accountID string, includePending bool) ([]domain.LedgerEntry, error) {
	query := `
		SELECT entry_id, transfer_id, account_id, amount, entry_type, status, created_at
		FROM ledger_entries
		WHERE account_id = $1
	`
	args := []any{accountID}
	if !includePending {
		query += ` AND status = $2`
		args = append(args, models.EntryStatus(domain.EntryFinalized))
	}
	query += ` ORDER BY created_at ASC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries for account %s: %w", accountID, err)
	}
	return scanEntries(rows, "account "+accountID)
}

// FindEntriesByTransferID retrieves all entries tied to a transfer in
// ascending creation order.
func (r *PgxEntryRepository) FindEntriesByTransferID(ctx context.Context, transferID string) ([]domain.LedgerEntry, error) {
	query := `
		SELECT entry_id, transfer_id, account_id, amount, entry_type, status, created_at
		FROM ledger_entries
		WHERE transfer_id = $1
		ORDER BY created_at ASC;
	`
	rows, err := r.Pool.Query(ctx, query, transferID)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries for transfer %s: %w", transferID, err)
	}
	return scanEntries(rows, "transfer "+transferID)
}

func scanEntries(rows pgx.Rows, scope string) ([]domain.LedgerEntry, error) {
	defer rows.Close()

	entries := []domain.LedgerEntry{}
	for rows.Next() {
		var m models.LedgerEntry
		if err := rows.Scan(
			&m.EntryID,
			&m.TransferID,
			&m.AccountID,
			&m.Amount,
			&m.EntryType,
			&m.Status,
			&m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan entry row for %s: %w", scope, err)
		}
		entries = append(entries, mapping.ToDomainLedgerEntry(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating entry rows for %s: %w", scope, err)
	}

	return entries, nil
}
