package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"foodshare/internal/config"
	"foodshare/internal/database"
	"foodshare/internal/handler"
	"foodshare/internal/repository"
	"foodshare/internal/router"
	"foodshare/internal/service"

	"github.com/go-playground/validator/v10"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting foodshare API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Open the database and bring the schema up to date
	db, err := database.Open(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := database.Migrate(db, logger); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	// Initialize the memoizing store and repositories
	store := repository.NewStore(db, cfg.Cache.TTL(), logger)
	providerRepo := repository.NewProviderRepository(store, logger)
	receiverRepo := repository.NewReceiverRepository(store, logger)
	listingRepo := repository.NewListingRepository(store, logger)
	claimRepo := repository.NewClaimRepository(store, logger)
	reportRepo := repository.NewReportRepository(store, logger)

	// Initialize services
	providerService := service.NewProviderService(providerRepo, logger)
	receiverService := service.NewReceiverService(receiverRepo, logger)
	listingService := service.NewListingService(listingRepo, providerRepo, logger)
	claimService := service.NewClaimService(claimRepo, listingRepo, receiverRepo, logger)
	reportService := service.NewReportService(reportRepo, providerRepo, logger)

	// Initialize HTTP handlers
	validate := validator.New()
	dashboardHandler := handler.NewDashboardHandler(reportService, logger)
	reportHandler := handler.NewReportHandler(reportService, logger)
	providerHandler := handler.NewProviderHandler(providerService, validate, logger)
	receiverHandler := handler.NewReceiverHandler(receiverService, logger)
	listingHandler := handler.NewListingHandler(listingService, validate, logger)
	claimHandler := handler.NewClaimHandler(claimService, validate, logger)

	// Initialize router
	mux := router.New(
		dashboardHandler,
		reportHandler,
		providerHandler,
		receiverHandler,
		listingHandler,
		claimHandler,
		logger,
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Str("database", cfg.Database.Path).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
