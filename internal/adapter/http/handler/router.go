package handler

import (
	"vendorguard/internal/adapter/http/middleware"
	"vendorguard/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	CheckoutSvc    ports.CheckoutService
	BalanceSvc     ports.BalanceService
	WithdrawalSvc  ports.WithdrawalService
	ExportSvc      ports.ExportService
	PaylinkSvc     ports.PaylinkService
	Ledger         ports.LedgerStore
	Settings       ports.SettingsStore
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep, verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	checkoutHandler := NewCheckoutHandler(deps.CheckoutSvc)
	dashboardHandler := NewDashboardHandler(deps.BalanceSvc, deps.WithdrawalSvc, deps.ExportSvc, deps.Ledger)
	settingsHandler := NewSettingsHandler(deps.Settings)
	paylinkHandler := NewPaylinkHandler(deps.PaylinkSvc)

	// Hosted checkout page for shared payment links
	r.GET("/pay/:id", paylinkHandler.ResolvePaylink)

	v1 := r.Group("/api/v1")

	checkout := v1.Group("/checkout")
	{
		checkout.POST("/crypto", checkoutHandler.PayCrypto)
		checkout.POST("/card", checkoutHandler.PayCard)
	}

	dashboard := v1.Group("/dashboard")
	{
		dashboard.GET("/summary", dashboardHandler.GetSummary)
		dashboard.GET("/revenue", dashboardHandler.GetRevenue)
	}

	transactions := v1.Group("/transactions")
	{
		transactions.GET("", dashboardHandler.ListTransactions)
		transactions.GET("/export", dashboardHandler.ExportTransactions)
		transactions.POST("/:id/refund", dashboardHandler.Refund)
	}

	v1.POST("/payouts/withdraw", dashboardHandler.Withdraw)

	settings := v1.Group("/settings")
	{
		settings.GET("", settingsHandler.GetSettings)
		settings.PUT("", settingsHandler.UpdateSettings)
	}

	v1.POST("/paylinks", paylinkHandler.CreatePaylink)

	return r
}
