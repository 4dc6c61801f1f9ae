package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ledgerkit/ledgerd/internal/apperrors"
	portssvc "github.com/ledgerkit/ledgerd/internal/core/ports/services"
	"github.com/ledgerkit/ledgerd/internal/dto"
)

type TransferHandler struct {
	transferService portssvc.TransferSvcFacade
}

func NewTransferHandler(transferService portssvc.TransferSvcFacade) *TransferHandler {
	return &TransferHandler{transferService: transferService}
}

// CreateTransfer handles POST /transfers. Callers retrying a failed request
// should resend the same idempotencyKey; the engine absorbs the replay.
func (h *TransferHandler) CreateTransfer(c *gin.Context) {
	var req dto.CreateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("%s: %s", apperrors.ErrValidation, err.Error())})
		return
	}

	transfer, err := h.transferService.CreateTransfer(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransferResponse(transfer))
}

// GetTransfer handles GET /transfers/:transferID.
func (h *TransferHandler) GetTransfer(c *gin.Context) {
	transferID := c.Param("transferID")

	transfer, entries, err := h.transferService.GetTransferWithEntries(c.Request.Context(), transferID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.GetTransferResponse{
		Transfer: dto.ToTransferResponse(transfer),
		Entries:  dto.ToEntryResponses(entries),
	})
}

// FinalizeTransfer handles POST /transfers/:transferID/finalize.
func (h *TransferHandler) FinalizeTransfer(c *gin.Context) {
	transferID := c.Param("transferID")

	if err := h.transferService.FinalizeTransfer(c.Request.Context(), transferID); err != nil {
		respondError(c, err)
		return
	}

	transfer, entries, err := h.transferService.GetTransferWithEntries(c.Request.Context(), transferID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.GetTransferResponse{
		Transfer: dto.ToTransferResponse(transfer),
		Entries:  dto.ToEntryResponses(entries),
	})
}
