package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/chari-wallet-mock/internal/config"
	"github.com/chari-wallet-mock/internal/data/memory"
	"github.com/chari-wallet-mock/internal/fixtures"
	"github.com/chari-wallet-mock/internal/logger"
	"github.com/chari-wallet-mock/internal/wallet_api"
	"github.com/chari-wallet-mock/internal/wallet_api/service"
)

func main() {
	// Create base context with cancellation
	appCtx, cancelAppCtx := context.WithCancel(context.Background())
	defer cancelAppCtx()

	// Initialize configuration
	cfg, err := config.LoadConfig("mock_server")
	if err != nil {
		// logger is not initialized yet, so we use fmt
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.NewLogger(cfg)

	// Initialize the in-memory store and seed the canned fixtures.
	// Everything lives in this one store; nothing survives a restart.
	store := memory.NewStore()
	if err := fixtures.Seed(appCtx, log, cfg, store); err != nil {
		log.Error("Failed to seed fixture store", "error", err)
		os.Exit(1)
	}

	// Initialize services
	customerService := service.NewCustomerService(log, store, cfg.Fixtures.ConfirmationCode)
	transactionService := service.NewTransactionService(log, store)
	beneficiaryService := service.NewBeneficiaryService(log, store)

	// Initialize REST server
	server := wallet_api.NewServer(log, cfg, customerService, transactionService, beneficiaryService)
	log.Info("REST server initialized")

	// Create error channel for server errors
	errChan := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Server.Port)
		if err := server.Start(); err != nil {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Set up signal handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	// Wait for a shutdown signal or error
	var serverErr error
	select {
	case <-quit:
		log.Info("Shutdown signal received")
	case err := <-errChan:
		log.Error("Server error occurred", "error", err)
		serverErr = err
	}

	// Cancel the application context
	cancelAppCtx()

	// Create a shutdown context with timeout
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancelShutdown()

	// Graceful shutdown sequence
	log.Info("Starting graceful shutdown...")

	if err = server.Stop(shutdownCtx); err != nil {
		log.Error("Error during server shutdown", "error", err)
	}

	// Final status
	if serverErr != nil {
		log.Error("HTTP server shutdown with errors", "error", serverErr)
	}
	if err != nil {
		log.Error("Server shutdown completed with errors")
	} else {
		log.Info("Server shutdown completed successfully")
	}
}
