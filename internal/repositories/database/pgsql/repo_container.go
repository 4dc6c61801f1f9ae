package pgsql

import (
	portsrepo "github.com/ledgerkit/ledgerd/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires all pgsql repositories around one shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:   newPgxAccountRepository(dbPool),
		TransferRepo:  newPgxTransferRepository(dbPool),
		EntryRepo:     newPgxEntryRepository(dbPool),
		ReportingRepo: newReportingRepository(dbPool),
	}
}
