package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ledgerkit/ledgerd/internal/apperrors"
	portssvc "github.com/ledgerkit/ledgerd/internal/core/ports/services"
	"github.com/ledgerkit/ledgerd/internal/dto"
)

type ReportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func NewReportingHandler(reportingService portssvc.ReportingSvcFacade) *ReportingHandler {
	return &ReportingHandler{reportingService: reportingService}
}

// GetReconciliationReport handles GET /reports/reconciliation.
// The optional date query parameter takes YYYY-MM-DD (UTC) and defaults to
// the current UTC date.
func (h *ReportingHandler) GetReconciliationReport(c *gin.Context) {
	var date *time.Time
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("%s: date must be YYYY-MM-DD", apperrors.ErrValidation)})
			return
		}
		date = &parsed
	}

	report, err := h.reportingService.ReconciliationReport(c.Request.Context(), date)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReconciliationReportResponse(report))
}
