package dto

import (
	"time"

	"github.com/ledgerkit/ledgerd/internal/core/domain"
)

// CreateAccountRequest defines the payload for creating an account.
// AccountID is optional; a UUID is generated when absent.
type CreateAccountRequest struct {
	AccountID string `json:"accountID" binding:"omitempty,uuid"`
	Name      string `json:"name" binding:"required"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID string    `json:"accountID"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID: a.AccountID,
		Name:      a.Name,
		CreatedAt: a.CreatedAt,
	}
}

// BalanceResponse defines the derived balance returned for an account.
type BalanceResponse struct {
	AccountID      string `json:"accountID"`
	Balance        int64  `json:"balance"` // minor currency units, signed
	IncludePending bool   `json:"includePending"`
}
