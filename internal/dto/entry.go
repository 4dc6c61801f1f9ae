package dto

import (
	"time"

	"github.com/ledgerkit/ledgerd/internal/core/domain"
)

// CreateEntryRequest defines the payload for recording a standalone ledger
// entry not tied to a transfer.
type CreateEntryRequest struct {
	TransferID *string `json:"transferID"`
	AccountID  string  `json:"accountID" binding:"required"`
	Amount     int64   `json:"amount" binding:"required"`
	EntryType  string  `json:"entryType" binding:"required,oneof=DEBIT CREDIT"`
	Status     string  `json:"status" binding:"omitempty,oneof=PENDING FINALIZED"`
}

// EntryResponse defines the data returned for a ledger entry.
type EntryResponse struct {
	EntryID    string    `json:"entryID"`
	TransferID *string   `json:"transferID,omitempty"`
	AccountID  string    `json:"accountID"`
	Amount     int64     `json:"amount"`
	EntryType  string    `json:"entryType"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ToEntryResponse converts a domain.LedgerEntry to EntryResponse DTO.
func ToEntryResponse(e *domain.LedgerEntry) EntryResponse {
	return EntryResponse{
		EntryID:    e.EntryID,
		TransferID: e.TransferID,
		AccountID:  e.AccountID,
		Amount:     e.Amount,
		EntryType:  string(e.EntryType),
		Status:     string(e.Status),
		CreatedAt:  e.CreatedAt,
	}
}

// ToEntryResponses converts a slice of domain.LedgerEntry to []EntryResponse.
func ToEntryResponses(entries []domain.LedgerEntry) []EntryResponse {
	responses := make([]EntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToEntryResponse(&entries[i])
	}
	return responses
}

// ListEntriesResponse wraps an account's entry lines.
type ListEntriesResponse struct {
	AccountID string          `json:"accountID"`
	Entries   []EntryResponse `json:"entries"`
}
