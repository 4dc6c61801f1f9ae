package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ledgerkit/ledgerd/internal/core/domain"
)

func TestLedgerEntry_SignedAmount(t *testing.T) {
	tests := []struct {
		name  string
		entry domain.LedgerEntry
		want  int64
	}{
		{
			name:  "credit adds to the balance",
			entry: domain.LedgerEntry{Amount: 1000, EntryType: domain.Credit},
			want:  1000,
		},
		{
			name:  "debit subtracts from the balance",
			entry: domain.LedgerEntry{Amount: 1000, EntryType: domain.Debit},
			want:  -1000,
		},
		{
			name:  "single unit credit",
			entry: domain.LedgerEntry{Amount: 1, EntryType: domain.Credit},
			want:  1,
		},
		{
			name:  "large debit",
			entry: domain.LedgerEntry{Amount: 9_999_999_999, EntryType: domain.Debit},
			want:  -9_999_999_999,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.entry.SignedAmount())
		})
	}
}

func TestTransfer_IsFinalized(t *testing.T) {
	tests := []struct {
		name     string
		status   domain.TransferStatus
		expected bool
	}{
		{name: "pending transfer", status: domain.TransferPending, expected: false},
		{name: "finalized transfer", status: domain.TransferFinalized, expected: true},
		{name: "failed transfer", status: domain.TransferFailed, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transfer := domain.Transfer{Status: tt.status}
			assert.Equal(t, tt.expected, transfer.IsFinalized())
		})
	}
}
