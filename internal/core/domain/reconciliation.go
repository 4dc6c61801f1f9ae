package domain

// AnomalyReasonMissingEntries is reported for transfers whose associated
// entry count is not exactly two (zero, one, or more than two).
const AnomalyReasonMissingEntries = "missing entries or partial"

// ReconciliationAnomaly flags a structurally broken transfer found during a
// daily integrity scan.
type ReconciliationAnomaly struct {
	TransferID string `json:"transferId"`
	Amount     int64  `json:"amount"`
	EntryCount int    `json:"entryCount"`
	Reason     string `json:"reason"`
}

// ReconciliationReport summarises one calendar day (UTC) of ledger activity:
// the net finalized movement per account and any transfers with a broken
// entry pair.
type ReconciliationReport struct {
	Date      string                  `json:"date"` // YYYY-MM-DD (UTC)
	Totals    map[string]int64        `json:"totals"`
	Anomalies []ReconciliationAnomaly `json:"anomalies"`
}
