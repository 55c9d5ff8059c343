package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Ricomaldo/multi-shop-demo-sub000/internal/config"
	"github.com/Ricomaldo/multi-shop-demo-sub000/internal/database"
	"github.com/Ricomaldo/multi-shop-demo-sub000/internal/dataset"
	"github.com/Ricomaldo/multi-shop-demo-sub000/internal/filter"
	"github.com/Ricomaldo/multi-shop-demo-sub000/internal/handler"
	"github.com/Ricomaldo/multi-shop-demo-sub000/internal/repository"
	"github.com/Ricomaldo/multi-shop-demo-sub000/internal/router"
	"github.com/Ricomaldo/multi-shop-demo-sub000/internal/service"

	"github.com/rs/zerolog"
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
	logger.Info().Msg("starting multi-shop catalog API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize repositories: Postgres by default, an in-memory catalog
	// loaded from a dataset in demo mode.
	var shopRepo repository.ShopRepository
	var productRepo repository.ProductRepository

	if cfg.Dataset.Enabled {
		batch, err := loadDataset(ctx, cfg.Dataset, logger)
		if err != nil {
			return fmt.Errorf("failed to load dataset: %w", err)
		}
		shopRepo, productRepo = repository.NewMemoryRepositories(batch.Shops, batch.Products, logger)
	} else {
		pool, err := database.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer pool.Close()

		shopRepo = repository.NewShopRepository(pool, logger)
		productRepo = repository.NewProductRepository(pool, logger)
	}

	// Initialize the remote filter collaborator when configured
	var remote filter.Remote
	if cfg.RemoteFilter.BaseURL != "" {
		remote = filter.NewHTTPRemote(
			cfg.RemoteFilter.BaseURL,
			time.Duration(cfg.RemoteFilter.TimeoutSeconds)*time.Second,
			logger,
		)
		logger.Info().
			Str("base_url", cfg.RemoteFilter.BaseURL).
			Int("timeout_seconds", cfg.RemoteFilter.TimeoutSeconds).
			Msg("remote filtering enabled")
	} else {
		logger.Info().Msg("remote filtering disabled, all filtering is local")
	}

	// Initialize the filter pipeline and catalog service
	pipeline := filter.NewPipeline(remote, logger)
	catalogService := service.NewCatalogService(shopRepo, productRepo, pipeline, logger)

	// Initialize HTTP handlers
	shopHandler := handler.NewShopHandler(catalogService, logger)
	productHandler := handler.NewProductHandler(catalogService, logger)

	// Initialize router
	mux := router.New(shopHandler, productHandler, cfg.Auth.APIKey, logger)

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

// loadDataset builds the dataset loader chain (S3 with local fallback when
// enabled, local file otherwise) and loads the catalog batch.
func loadDataset(ctx context.Context, cfg config.DatasetConfig, logger zerolog.Logger) (*dataset.Batch, error) {
	fileLoader := dataset.NewFileLoader(logger)
	loader := fileLoader

	if cfg.S3Enabled {
		s3Loader, err := dataset.NewS3Loader(ctx, cfg.S3Bucket, cfg.S3Region, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 dataset loader, falling back to local file system only")
		} else {
			loader = dataset.NewFallbackLoader(s3Loader, fileLoader, cfg.S3Prefix, true, logger)
		}
	}

	return loader.Load(ctx, cfg.LocalPath)
}
