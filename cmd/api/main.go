package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"restaurant-hub/internal/auth"
	"restaurant-hub/internal/config"
	"restaurant-hub/internal/database"
	"restaurant-hub/internal/handler"
	"restaurant-hub/internal/realtime"
	"restaurant-hub/internal/repository"
	"restaurant-hub/internal/router"
	"restaurant-hub/internal/service"
	"restaurant-hub/internal/storage"
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
	logger.Info().Msg("starting restaurant-hub API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection pool
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	// Apply schema migrations
	if err := database.Migrate(ctx, pool.Pool, logger); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Initialize repositories
	categoryRepo := repository.NewCategoryRepository(pool, logger)
	itemRepo := repository.NewMenuItemRepository(pool, logger)
	contactRepo := repository.NewContactRepository(pool, logger)
	siteImageRepo := repository.NewSiteImageRepository(pool, logger)
	menuImageRepo := repository.NewMenuImageRepository(pool, logger)
	userRepo := repository.NewUserRepository(pool, logger)
	statsRepo := repository.NewStatsRepository(pool, logger)

	// Initialize the update hub
	hub := realtime.NewHub(logger)
	defer hub.Close()

	// Initialize object storage
	var uploader storage.Uploader
	if cfg.Storage.Enabled {
		uploader, err = storage.NewS3Uploader(ctx, cfg.Storage, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize object storage: %w", err)
		}
	} else {
		uploader = storage.NewDisabledUploader()
		logger.Info().Msg("object storage disabled, image uploads will be rejected")
	}

	// Initialize services
	categoryService := service.NewCategoryService(categoryRepo, hub, logger)
	itemService := service.NewMenuItemService(itemRepo, categoryRepo, hub, logger)
	contactService := service.NewContactService(contactRepo, hub, logger)
	imageService := service.NewImageService(siteImageRepo, menuImageRepo, itemRepo, uploader, hub, logger)
	authService := service.NewAuthService(userRepo, logger)
	statsService := service.NewStatsService(statsRepo, logger)

	// Ensure the configured admin account exists
	if err := authService.EnsureAdmin(ctx, cfg.Admin.Email, cfg.Admin.Password); err != nil {
		return fmt.Errorf("failed to bootstrap admin account: %w", err)
	}

	// Initialize session manager and HTTP handlers
	sessions := auth.NewSessionManager(cfg.Session)
	handlers := router.Handlers{
		Category:  handler.NewCategoryHandler(categoryService, logger),
		MenuItem:  handler.NewMenuItemHandler(itemService, logger),
		Contact:   handler.NewContactHandler(contactService, logger),
		Image:     handler.NewImageHandler(imageService, logger),
		Auth:      handler.NewAuthHandler(authService, sessions, logger),
		Dashboard: handler.NewDashboardHandler(statsService, logger),
		Health:    handler.NewHealthHandler(pool.Pool, logger),
		WS:        handler.NewWSHandler(hub, cfg.CORS.AllowedOrigins, logger),
	}

	// Initialize router
	mux := router.New(handlers, sessions, userRepo, cfg, logger)

	// Create HTTP server. No WriteTimeout: the websocket endpoint holds
	// its connection open indefinitely.
	server := &http.Server{
		Addr:        cfg.Server.Address(),
		Handler:     mux,
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
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

		// Drop websocket subscribers so Shutdown does not wait on them
		hub.Close()

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
