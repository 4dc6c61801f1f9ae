package domain

import "time"

// TransferStatus indicates the lifecycle state of a transfer.
type TransferStatus string

const (
	TransferPending   TransferStatus = "PENDING"
	TransferFinalized TransferStatus = "FINALIZED"
	// TransferFailed is a reserved terminal state; no current operation produces it.
	TransferFailed TransferStatus = "FAILED"
)

// Transfer represents a single money movement between two accounts,
// recorded as a balanced pair of ledger entries.
type Transfer struct {
	TransferID     string         `json:"transferID"`     // Primary Key (UUID)
	IdempotencyKey *string        `json:"idempotencyKey"` // Globally unique when present
	Reference      *string        `json:"reference"`      // Nullable caller reference
	Amount         int64          `json:"amount"`         // Positive, minor currency units
	Currency       string         `json:"currency"`
	Status         TransferStatus `json:"status"`
	CreatedAt      time.Time      `json:"createdAt"`
	FinalizedAt    *time.Time     `json:"finalizedAt"`
}

// IsFinalized reports whether the transfer has settled.
func (t Transfer) IsFinalized() bool {
	return t.Status == TransferFinalized
}
