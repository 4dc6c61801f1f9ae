package domain

import "time"

// EntryType indicates whether a ledger entry is a Debit or a Credit.
type EntryType string

const (
	Debit  EntryType = "DEBIT"
	Credit EntryType = "CREDIT"
)

// EntryStatus indicates the lifecycle state of a ledger entry.
// Entries follow their parent transfer's transition and are never deleted.
type EntryStatus string

const (
	EntryPending   EntryStatus = "PENDING"
	EntryFinalized EntryStatus = "FINALIZED"
)

// LedgerEntry represents a single debit or credit row against one account,
// optionally tied to the transfer that produced it.
type LedgerEntry struct {
	EntryID    string      `json:"entryID"`    // Primary Key (UUID)
	TransferID *string     `json:"transferID"` // Nullable FK -> transfers.transfer_id
	AccountID  string      `json:"accountID"`  // FK -> accounts.account_id
	Amount     int64       `json:"amount"`     // Positive, minor currency units
	EntryType  EntryType   `json:"entryType"`
	Status     EntryStatus `json:"status"`
	CreatedAt  time.Time   `json:"createdAt"`
}

// SignedAmount returns the entry's effect on its account balance:
// credits increase the balance, debits decrease it.
func (e LedgerEntry) SignedAmount() int64 {
	if e.EntryType == Credit {
		return e.Amount
	}
	return -e.Amount
}
