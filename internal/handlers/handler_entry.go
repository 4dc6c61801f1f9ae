package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ledgerkit/ledgerd/internal/apperrors"
	portssvc "github.com/ledgerkit/ledgerd/internal/core/ports/services"
	"github.com/ledgerkit/ledgerd/internal/dto"
)

type EntryHandler struct {
	entryService portssvc.EntrySvcFacade
}

func NewEntryHandler(entryService portssvc.EntrySvcFacade) *EntryHandler {
	return &EntryHandler{entryService: entryService}
}

// CreateEntry handles POST /entries for standalone bookkeeping entries.
func (h *EntryHandler) CreateEntry(c *gin.Context) {
	var req dto.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("%s: %s", apperrors.ErrValidation, err.Error())})
		return
	}

	entry, err := h.entryService.CreateEntry(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEntryResponse(entry))
}
