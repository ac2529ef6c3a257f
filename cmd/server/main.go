package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/giufus/workout-streak-bot/internal/api"
	"github.com/giufus/workout-streak-bot/internal/catalog"
	"github.com/giufus/workout-streak-bot/internal/config"
	"github.com/giufus/workout-streak-bot/internal/factory"
	redisstorage "github.com/giufus/workout-streak-bot/internal/storage/redis"
)

func main() {
	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Build factory config from environment
	factoryCfg := factory.Config{
		CatalogPath: cfg.CatalogPath,
		Logger:      logger,
		StorageType: cfg.StorageType,
	}

	// Configure Redis if storage type is redis
	if factoryCfg.StorageType == factory.StorageTypeRedis {
		if cfg.RedisURL == "" {
			logger.Error("REDIS_URL required when STORAGE_TYPE=redis")
			os.Exit(1)
		}
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.RedisURL
		factoryCfg.RedisConfig = &redisCfg
	}

	// Create application factory
	app, err := factory.New(factoryCfg)
	if err != nil {
		if errors.Is(err, catalog.ErrInvalidConfig) {
			logger.Error("invalid exercise catalog", slog.String("error", err.Error()))
		} else {
			logger.Error("failed to create application", slog.String("error", err.Error()))
		}
		os.Exit(1)
	}
	defer func() { _ = app.Storage.Close() }()

	// Seed the exercise catalog before serving traffic
	if err := app.Storage.EnsureSeeded(context.Background(), app.Catalog); err != nil {
		logger.Error("failed to seed exercise catalog", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.AdminToken == "" {
		logger.Warn("ADMIN_TOKEN not set, admin endpoints disabled")
	}

	// Create API router
	router := api.NewRouter(api.RouterConfig{
		Logger:           logger,
		Catalog:          app.Catalog,
		Storage:          app.Storage,
		LedgerService:    app.LedgerService,
		AggregateService: app.AggregateService,
		AdminToken:       cfg.AdminToken,
	})

	// Create server
	serverConfig := api.DefaultServerConfig()
	serverConfig.Host = cfg.Host
	serverConfig.Port = cfg.Port
	server := api.NewServer(router, serverConfig, logger)

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}
