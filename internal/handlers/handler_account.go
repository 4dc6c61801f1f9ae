package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ledgerkit/ledgerd/internal/apperrors"
	portssvc "github.com/ledgerkit/ledgerd/internal/core/ports/services"
	"github.com/ledgerkit/ledgerd/internal/dto"
)

type AccountHandler struct {
	accountService portssvc.AccountSvcFacade
	entryService   portssvc.EntrySvcFacade
}

func NewAccountHandler(accountService portssvc.AccountSvcFacade, entryService portssvc.EntrySvcFacade) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
		entryService:   entryService,
	}
}

// CreateAccount handles POST /accounts.
func (h *AccountHandler) CreateAccount(c *gin.Context) {
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("%s: %s", apperrors.ErrValidation, err.Error())})
		return
	}

	account, err := h.accountService.CreateAccount(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

// GetAccount handles GET /accounts/:accountID.
func (h *AccountHandler) GetAccount(c *gin.Context) {
	accountID := c.Param("accountID")

	account, err := h.accountService.GetAccountByID(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// GetBalance handles GET /accounts/:accountID/balance.
// The include_pending query flag defaults to true, matching the engine's
// view of provisional state; pass include_pending=false for settled-only.
func (h *AccountHandler) GetBalance(c *gin.Context) {
	accountID := c.Param("accountID")
	includePending := parseIncludePending(c)

	balance, err := h.entryService.GetBalance(c.Request.Context(), accountID, includePending)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{
		AccountID:      accountID,
		Balance:        balance,
		IncludePending: includePending,
	})
}

// ListEntries handles GET /accounts/:accountID/entries.
func (h *AccountHandler) ListEntries(c *gin.Context) {
	accountID := c.Param("accountID")
	includePending := parseIncludePending(c)

	entries, err := h.entryService.ListEntriesByAccount(c.Request.Context(), accountID, includePending)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ListEntriesResponse{
		AccountID: accountID,
		Entries:   dto.ToEntryResponses(entries),
	})
}

func parseIncludePending(c *gin.Context) bool {
	includePending, err := strconv.ParseBool(c.DefaultQuery("include_pending", "true"))
	if err != nil {
		return true
	}
	return includePending
}
