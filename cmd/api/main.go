package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vendorguard/config"
	httpHandler "vendorguard/internal/adapter/http/handler"
	pgStorage "vendorguard/internal/adapter/storage/postgres"
	redisStorage "vendorguard/internal/adapter/storage/redis"
	"vendorguard/internal/core/ports"
	"vendorguard/internal/service"
	"vendorguard/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting VendorGuard")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	if err := pgStorage.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("Failed to prepare snapshot schema")
	}

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// Snapshot backend selection
	var snapshots ports.SnapshotStore
	switch cfg.Storage.Backend {
	case "redis":
		snapshots = redisStorage.NewSnapshotStore(rdb)
	default:
		snapshots = pgStorage.NewSnapshotStore(pool)
	}
	log.Info().Str("backend", cfg.Storage.Backend).Msg("Snapshot store ready")

	// Change feed is always Redis pub/sub, regardless of snapshot backend
	feed := redisStorage.NewChangeFeed(rdb, logger.WithComponent(log, "change_feed"))

	// Wallet capability: injected by deployments that bridge to a browser
	// or hardware wallet. This headless build runs without one, so crypto
	// checkouts report the wallet as unavailable while card checkouts,
	// balances and settings keep working.
	var wallet ports.WalletCapability

	// Initialize stores and business services
	ledger := service.NewLedgerService(snapshots, feed, logger.WithComponent(log, "ledger"))
	settings := service.NewSettingsService(snapshots, feed, logger.WithComponent(log, "settings"))
	checkoutSvc := service.NewCheckoutService(wallet, ledger, cfg.Checkout, logger.WithComponent(log, "checkout"))
	balanceSvc := service.NewBalanceService(ledger, logger.WithComponent(log, "balance"))
	withdrawalSvc := service.NewWithdrawalService(ledger, wallet, cfg.Checkout, logger.WithComponent(log, "withdrawal"))
	exportSvc := service.NewExportService(ledger)
	paylinkSvc := service.NewPaylinkService(cfg.Paylink)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		CheckoutSvc:    checkoutSvc,
		BalanceSvc:     balanceSvc,
		WithdrawalSvc:  withdrawalSvc,
		ExportSvc:      exportSvc,
		PaylinkSvc:     paylinkSvc,
		Ledger:         ledger,
		Settings:       settings,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
