package models

import "time"

// TransferStatus mirrors domain.TransferStatus at the persistence layer.
type TransferStatus string

// Transfer is the persistence model for the transfers table.
type Transfer struct {
	TransferID     string
	IdempotencyKey *string
	Reference      *string
	Amount         int64
	Currency       string
	Status         TransferStatus
	CreatedAt      time.Time
	FinalizedAt    *time.Time
}
