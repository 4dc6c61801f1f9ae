package domain

import "time"

// Account represents an account identity within the ledger.
// Accounts hold no balance state of their own; balances are always derived
// from the ledger entries that reference them.
type Account struct {
	AccountID string    `json:"accountID"` // Primary Key (UUID)
	Name      string    `json:"name"`      // User-defined name
	CreatedAt time.Time `json:"createdAt"`
}
