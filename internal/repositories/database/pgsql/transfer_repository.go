package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ledgerkit/ledgerd/internal/apperrors"
	"github.com/ledgerkit/ledgerd/internal/core/domain"
	portsrepo "github.com/ledgerkit/ledgerd/internal/core/ports/repositories"
	"github.com/ledgerkit/ledgerd/internal/models"
	"github.com/ledgerkit/ledgerd/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransferRepository struct {
	BaseRepository
}

// newPgxTransferRepository creates a new repository for transfer data.
func newPgxTransferRepository(pool *pgxpool.Pool) portsrepo.TransferRepositoryFacade {
	return &PgxTransferRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxTransferRepository implements portsrepo.TransferRepositoryFacade
var _ portsrepo.TransferRepositoryFacade = (*PgxTransferRepository)(nil)

// CreateTransferWithEntries creates a transfer and its balancing entry pair
// within one database transaction.
//
// With an idempotency key the transfer insert is conflict-ignoring and the row
// is re-read by key, so concurrent or retried calls converge on one transfer
// ID. Entries are only inserted when the resolved transfer has none yet, which
// makes the whole operation idempotent end to end, not just the row insert.
// The unique index on (transfer_id, entry_type) turns a lost race on the
// entry-count check into a fast unique-violation failure.
func (r *PgxTransferRepository) CreateTransferWithEntries(ctx context.Context, transfer domain.Transfer, entries []domain.LedgerEntry) (*domain.Transfer, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	// Rollback is a no-op once the transaction is committed.
	defer func() { _ = r.Rollback(ctx, tx) }()

	modelTransfer := mapping.ToModelTransfer(transfer)

	insertQuery := `
		INSERT INTO transfers (transfer_id, idempotency_key, reference, amount, currency, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	transferID := modelTransfer.TransferID
	if modelTransfer.IdempotencyKey != nil {
		_, err = tx.Exec(ctx, insertQuery+` ON CONFLICT (idempotency_key) DO NOTHING;`,
			modelTransfer.TransferID,
			modelTransfer.IdempotencyKey,
			modelTransfer.Reference,
			modelTransfer.Amount,
			modelTransfer.Currency,
			modelTransfer.Status,
			modelTransfer.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to insert transfer for idempotency key: %w", err)
		}

		// Resolve the winning row's ID: either the one just inserted or the
		// one a previous call already created.
		err = tx.QueryRow(ctx,
			`SELECT transfer_id FROM transfers WHERE idempotency_key = $1;`,
			*modelTransfer.IdempotencyKey,
		).Scan(&transferID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, fmt.Errorf("%w: no transfer found for idempotency key after insert", apperrors.ErrIntegrity)
			}
			return nil, fmt.Errorf("failed to resolve transfer by idempotency key: %w", err)
		}
	} else {
		_, err = tx.Exec(ctx, insertQuery+`;`,
			modelTransfer.TransferID,
			nil,
			modelTransfer.Reference,
			modelTransfer.Amount,
			modelTransfer.Currency,
			modelTransfer.Status,
			modelTransfer.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to insert transfer %s: %w", modelTransfer.TransferID, err)
		}
	}

	var entryCount int
	err = tx.QueryRow(ctx,
		`SELECT COUNT(*) FROM ledger_entries WHERE transfer_id = $1;`,
		transferID,
	).Scan(&entryCount)
	if err != nil {
		return nil, fmt.Errorf("failed to count entries for transfer %s: %w", transferID, err)
	}

	if entryCount == 0 {
		batch := &pgx.Batch{}
		entryQuery := `
			INSERT INTO ledger_entries (entry_id, transfer_id, account_id, amount, entry_type, status, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7);
		`
		for _, entry := range entries {
			modelEntry := mapping.ToModelLedgerEntry(entry)
			batch.Queue(entryQuery,
				modelEntry.EntryID,
				transferID,
				modelEntry.AccountID,
				modelEntry.Amount,
				modelEntry.EntryType,
				modelEntry.Status,
				modelEntry.CreatedAt,
			)
		}

		br := tx.SendBatch(ctx, batch)
		if err := br.Close(); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				// A concurrent replay won the entry insert race; the unique
				// index on (transfer_id, entry_type) rejects the second pair.
				return nil, fmt.Errorf("%w: entry pair for transfer %s: %w", apperrors.ErrDuplicate, transferID, err)
			}
			return nil, fmt.Errorf("failed to execute entry batch for transfer %s: %w", transferID, err)
		}
	}

	persisted, err := r.findTransferByIDTx(ctx, tx, transferID)
	if err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return persisted, nil
}

// FinalizeTransfer marks a transfer and all entries referencing it finalized.
// Both updates run inside one database transaction, so a reader never sees the
// transfer finalized while its entries are still pending. Re-invoking on an
// already finalized transfer leaves the same end state.
func (r *PgxTransferRepository) FinalizeTransfer(ctx context.Context, transferID string, finalizedAt time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	tag, err := tx.Exec(ctx,
		`UPDATE transfers SET status = $1, finalized_at = $2 WHERE transfer_id = $3;`,
		models.TransferStatus(domain.TransferFinalized),
		finalizedAt,
		transferID,
	)
	if err != nil {
		return fmt.Errorf("failed to finalize transfer %s: %w", transferID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: transfer %s", apperrors.ErrNotFound, transferID)
	}

	_, err = tx.Exec(ctx,
		`UPDATE ledger_entries SET status = $1 WHERE transfer_id = $2;`,
		models.EntryStatus(domain.EntryFinalized),
		transferID,
	)
	if err != nil {
		return fmt.Errorf("failed to finalize entries for transfer %s: %w", transferID, err)
	}

	return r.Commit(ctx, tx)
}

// FindTransferByID retrieves a transfer by its ID.
func (r *PgxTransferRepository) FindTransferByID(ctx context.Context, transferID string) (*domain.Transfer, error) {
	return r.findTransferByID(ctx, r.Pool, transferID)
}

func (r *PgxTransferRepository) findTransferByIDTx(ctx context.Context, tx pgx.Tx, transferID string) (*domain.Transfer, error) {
	return r.findTransferByID(ctx, tx, transferID)
}

// rowQuerier is satisfied by both *pgxpool.Pool and pgx.Tx.
type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func (r *PgxTransferRepository) findTransferByID(ctx context.Context, q rowQuerier, transferID string) (*domain.Transfer, error) {
	query := `
		SELECT transfer_id, idempotency_key, reference, amount, currency, status, created_at, finalized_at
		FROM transfers
		WHERE transfer_id = $1;
	`
	var modelTransfer models.Transfer
	err := q.QueryRow(ctx, query, transferID).Scan(
		&modelTransfer.TransferID,
		&modelTransfer.IdempotencyKey,
		&modelTransfer.Reference,
		&modelTransfer.Amount,
		&modelTransfer.Currency,
		&modelTransfer.Status,
		&modelTransfer.CreatedAt,
		&modelTransfer.FinalizedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transfer by ID %s: %w", transferID, err)
	}

	domainTransfer := mapping.ToDomainTransfer(modelTransfer)
	return &domainTransfer, nil
}
