package models

import "time"

// EntryType mirrors domain.EntryType at the persistence layer.
type EntryType string

// EntryStatus mirrors domain.EntryStatus at the persistence layer.
type EntryStatus string

// LedgerEntry is the persistence model for the ledger_entries table.
type LedgerEntry struct {
	EntryID    string
	TransferID *string
	AccountID  string
	Amount     int64
	EntryType  EntryType
	Status     EntryStatus
	CreatedAt  time.Time
}
