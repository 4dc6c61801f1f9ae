package mapping

import (
	"github.com/ledgerkit/ledgerd/internal/core/domain"
	"github.com/ledgerkit/ledgerd/internal/models"
)

// ToModelLedgerEntry converts a domain.LedgerEntry to its persistence model.
func ToModelLedgerEntry(d domain.LedgerEntry) models.LedgerEntry {
	return models.LedgerEntry{
		EntryID:    d.EntryID,
		TransferID: d.TransferID,
		AccountID:  d.AccountID,
		Amount:     d.Amount,
		EntryType:  models.EntryType(d.EntryType),
		Status:     models.EntryStatus(d.Status),
		CreatedAt:  d.CreatedAt,
	}
}

// ToDomainLedgerEntry converts a persistence model back to a domain.LedgerEntry.
func ToDomainLedgerEntry(m models.LedgerEntry) domain.LedgerEntry {
	return domain.LedgerEntry{
		EntryID:    m.EntryID,
		TransferID: m.TransferID,
		AccountID:  m.AccountID,
		Amount:     m.Amount,
		EntryType:  domain.EntryType(m.EntryType),
		Status:     domain.EntryStatus(m.Status),
		CreatedAt:  m.CreatedAt,
	}
}
