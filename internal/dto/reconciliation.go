package dto

import "github.com/ledgerkit/ledgerd/internal/core/domain"

// ReconciliationAnomalyResponse describes one structurally broken transfer.
type ReconciliationAnomalyResponse struct {
	TransferID string `json:"transferId"`
	Amount     int64  `json:"amount"`
	EntryCount int    `json:"entryCount"`
	Reason     string `json:"reason"`
}

// ReconciliationReportResponse is the daily integrity report payload.
type ReconciliationReportResponse struct {
	Date      string                          `json:"date"`
	Totals    map[string]int64                `json:"totals"`
	Anomalies []ReconciliationAnomalyResponse `json:"anomalies"`
}

// ToReconciliationReportResponse converts a domain report to its DTO.
func ToReconciliationReportResponse(r *domain.ReconciliationReport) ReconciliationReportResponse {
	anomalies := make([]ReconciliationAnomalyResponse, len(r.Anomalies))
	for i, a := range r.Anomalies {
		anomalies[i] = ReconciliationAnomalyResponse{
			TransferID: a.TransferID,
			Amount:     a.Amount,
			EntryCount: a.EntryCount,
			Reason:     a.Reason,
		}
	}
	return ReconciliationReportResponse{
		Date:      r.Date,
		Totals:    r.Totals,
		Anomalies: anomalies,
	}
}
