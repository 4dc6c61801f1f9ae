package mapping

import (
	"github.com/ledgerkit/ledgerd/internal/core/domain"
	"github.com/ledgerkit/ledgerd/internal/models"
)

// ToModelTransfer converts a domain.Transfer to its persistence model.
func ToModelTransfer(d domain.Transfer) models.Transfer {
	return models.Transfer{
		TransferID:     d.TransferID,
		IdempotencyKey: d.IdempotencyKey,
		Reference:      d.Reference,
		Amount:         d.Amount,
		Currency:       d.Currency,
		Status:         models.TransferStatus(d.Status),
		CreatedAt:      d.CreatedAt,
		FinalizedAt:    d.FinalizedAt,
	}
}

// ToDomainTransfer converts a persistence model back to a domain.Transfer.
func ToDomainTransfer(m models.Transfer) domain.Transfer {
	return domain.Transfer{
		TransferID:     m.TransferID,
		IdempotencyKey: m.IdempotencyKey,
		Reference:      m.Reference,
		Amount:         m.Amount,
		Currency:       m.Currency,
		Status:         domain.TransferStatus(m.Status),
		CreatedAt:      m.CreatedAt,
		FinalizedAt:    m.FinalizedAt,
	}
}
