package dto

import (
	"time"

	"github.com/ledgerkit/ledgerd/internal/core/domain"
	"github.com/ledgerkit/ledgerd/internal/utils"
)

// CreateTransferRequest defines the payload for creating a transfer.
// Amount is in minor currency units; positivity is enforced by the service
// boundary so that replays and direct callers get the same validation.
type CreateTransferRequest struct {
	FromAccountID  string  `json:"fromAccountID" binding:"required"`
	ToAccountID    string  `json:"toAccountID" binding:"required"`
	Amount         int64   `json:"amount" binding:"required"`
	Currency       string  `json:"currency" binding:"omitempty,currencycode"`
	Reference      *string `json:"reference"`
	IdempotencyKey *string `json:"idempotencyKey"`
}

// TransferResponse defines the data returned for a transfer.
type TransferResponse struct {
	TransferID    string     `json:"transferID"`
	Reference     *string    `json:"reference,omitempty"`
	Amount        int64      `json:"amount"`
	DisplayAmount string     `json:"displayAmount"` // amount at currency precision, e.g. "10.00"
	Currency      string     `json:"currency"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"createdAt"`
	FinalizedAt   *time.Time `json:"finalizedAt,omitempty"`
}

// ToTransferResponse converts a domain.Transfer to TransferResponse DTO.
func ToTransferResponse(t *domain.Transfer) TransferResponse {
	return TransferResponse{
		TransferID:    t.TransferID,
		Reference:     t.Reference,
		Amount:        t.Amount,
		DisplayAmount: utils.FormatMinorUnits(t.Amount, t.Currency),
		Currency:      t.Currency,
		Status:        string(t.Status),
		CreatedAt:     t.CreatedAt,
		FinalizedAt:   t.FinalizedAt,
	}
}

// GetTransferResponse combines a transfer with its entry lines.
type GetTransferResponse struct {
	Transfer TransferResponse `json:"transfer"`
	Entries  []EntryResponse  `json:"entries"`
}
