package mapping

import (
	"github.com/ledgerkit/ledgerd/internal/core/domain"
	"github.com/ledgerkit/ledgerd/internal/models"
)

// ToModelAccount converts a domain.Account to its persistence model.
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID: d.AccountID,
		Name:      d.Name,
		CreatedAt: d.CreatedAt,
	}
}

// ToDomainAccount converts a persistence model back to a domain.Account.
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID: m.AccountID,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
	}
}
