package models

import "time"

// Account is the persistence model for the accounts table.
type Account struct {
	AccountID string
	Name      string
	CreatedAt time.Time
}
