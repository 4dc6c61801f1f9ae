package handlers

import (
	"regexp"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	portssvc "github.com/ledgerkit/ledgerd/internal/core/ports/services"
	"github.com/ledgerkit/ledgerd/internal/platform/config"
)

var currencyCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	registerValidations()

	r.Use(cors.Default())

	// Health check stays outside the API group
	r.GET("/health", GetHealth)

	setupAPIV1Routes(r, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(r *gin.Engine, services *portssvc.ServiceContainer) {
	v1 := r.Group("/api/v1")

	registerAccountRoutes(v1, services.Account, services.Entry)
	registerTransferRoutes(v1, services.Transfer)
	registerEntryRoutes(v1, services.Entry)
	registerReportingRoutes(v1, services.Reporting)
}

func registerAccountRoutes(v1 *gin.RouterGroup, accountSvc portssvc.AccountSvcFacade, entrySvc portssvc.EntrySvcFacade) {
	accountHandler := NewAccountHandler(accountSvc, entrySvc)

	accounts := v1.Group("/accounts")
	{
		accounts.POST("/", accountHandler.CreateAccount)
		accounts.GET("/:accountID", accountHandler.GetAccount)
		accounts.GET("/:accountID/balance", accountHandler.GetBalance)
		accounts.GET("/:accountID/entries", accountHandler.ListEntries)
	}
}

func registerTransferRoutes(v1 *gin.RouterGroup, transferSvc portssvc.TransferSvcFacade) {
	transferHandler := NewTransferHandler(transferSvc)

	transfers := v1.Group("/transfers")
	{
		transfers.POST("/", transferHandler.CreateTransfer)
		transfers.GET("/:transferID", transferHandler.GetTransfer)
		transfers.POST("/:transferID/finalize", transferHandler.FinalizeTransfer)
	}
}

func registerEntryRoutes(v1 *gin.RouterGroup, entrySvc portssvc.EntrySvcFacade) {
	entryHandler := NewEntryHandler(entrySvc)
	v1.POST("/entries", entryHandler.CreateEntry)
}

func registerReportingRoutes(v1 *gin.RouterGroup, reportingSvc portssvc.ReportingSvcFacade) {
	reportingHandler := NewReportingHandler(reportingSvc)
	v1.GET("/reports/reconciliation", reportingHandler.GetReconciliationReport)
}

// registerValidations adds custom binding rules to gin's validator engine.
func registerValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("currencycode", func(fl validator.FieldLevel) bool {
			return currencyCodePattern.MatchString(fl.Field().String())
		})
	}
}
