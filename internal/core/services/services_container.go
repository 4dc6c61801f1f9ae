package services

import (
	portsrepo "github.com/ledgerkit/ledgerd/internal/core/ports/repositories"
	portssvc "github.com/ledgerkit/ledgerd/internal/core/ports/services"
	"github.com/ledgerkit/ledgerd/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Account:   NewAccountService(repos.AccountRepo),
		Transfer:  NewTransferService(repos.TransferRepo, repos.EntryRepo, cfg.DefaultCurrency),
		Entry:     NewEntryService(repos.EntryRepo),
		Reporting: NewReportingService(repos.ReportingRepo),
	}
}
