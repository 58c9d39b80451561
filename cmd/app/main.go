package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kettlewell/stranded/internal/config"
	"github.com/kettlewell/stranded/internal/database"
	"github.com/kettlewell/stranded/internal/database/postgres"
	"github.com/kettlewell/stranded/internal/event"
	"github.com/kettlewell/stranded/internal/item"
	"github.com/kettlewell/stranded/internal/player"
	"github.com/kettlewell/stranded/internal/server"
	"github.com/kettlewell/stranded/internal/world"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	initLogger(cfg)

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		slog.Error("Environment validation failed", "error", err)
		os.Exit(1)
	}
	for _, w := range warnings {
		slog.Warn("Environment configuration warning", "warning", w)
	}

	slog.Info("Configuration loaded",
		"port", cfg.Port,
		"environment", cfg.Environment,
		"items_path", cfg.ItemsPath)

	// Database pool
	dbPool, err := database.NewPool(context.Background(), cfg.GetDBConnString(), database.PoolConfig{
		MaxConns:    config.DefaultDBMaxConns,
		MaxIdleTime: config.DefaultDBMaxIdleMins * time.Minute,
		MaxLifetime: config.DefaultDBMaxLifeMins * time.Minute,
	})
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// Item catalog
	loader := item.NewLoader()
	catalog, err := loader.Load(cfg.ItemsPath)
	if err != nil {
		slog.Error("Failed to load item catalog", "error", err, "path", cfg.ItemsPath)
		os.Exit(1)
	}
	if err := loader.Validate(catalog); err != nil {
		slog.Error("Invalid item catalog", "error", err, "path", cfg.ItemsPath)
		os.Exit(1)
	}

	registry, err := item.NewRegistry(catalog, nil)
	if err != nil {
		slog.Error("Failed to build item registry", "error", err)
		os.Exit(1)
	}
	slog.Info("Item catalog loaded", "items", len(registry.Names()), "version", catalog.Version)

	// Event bus
	eventBus := event.NewMemoryBus()

	// Repositories
	playerRepo := postgres.NewPlayerRepository(dbPool)
	placementRepo := postgres.NewPlacementRepository(dbPool)
	eventLogRepo := postgres.NewEventLogRepository(dbPool)

	// Services
	playerService := player.NewService(playerRepo, eventBus, player.DefaultCacheConfig())
	worldService := world.NewService(playerService, placementRepo, eventLogRepo, registry, eventBus)

	srv := server.NewServer(cfg.Port, cfg.APIKey, nil, dbPool, playerService, worldService)

	// Run the server and wait for a shutdown signal
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	case sig := <-stop:
		slog.Info("Shutting down server...", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Stop(ctx); err != nil {
			slog.Error("Server forced to shutdown", "error", err)
		}
	}

	slog.Info("Server stopped")
}
