package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/giufus/workout-streak-bot/internal/catalog"
	"github.com/giufus/workout-streak-bot/internal/dependencies/clock"
	"github.com/giufus/workout-streak-bot/internal/services/aggregate"
	"github.com/giufus/workout-streak-bot/internal/services/ledger"
	"github.com/giufus/workout-streak-bot/internal/services/report"
	"github.com/giufus/workout-streak-bot/internal/storage"
	"github.com/giufus/workout-streak-bot/internal/storage/memory"
	redisstorage "github.com/giufus/workout-streak-bot/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock clock.Clock

	// Exercise catalog
	Catalog *catalog.Catalog

	// Services
	LedgerService    *ledger.Service
	AggregateService *aggregate.Service
	Renderer         report.Renderer
}

// Config holds configuration for the application factory
type Config struct {
	// CatalogPath is the path to a JSON exercise definition file (optional)
	// If empty, the built-in default exercise set is used
	CatalogPath string
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Load the exercise catalog
	var cat *catalog.Catalog
	if cfg.CatalogPath != "" {
		loaded, err := catalog.Load(cfg.CatalogPath)
		if err != nil {
			return nil, err
		}
		cat = loaded
	} else {
		cat = catalog.Default()
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig, logger)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	// Create external dependencies
	clk := clock.New()

	return newWithDependencies(store, cat, clk, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, cat *catalog.Catalog, clk clock.Clock, logger *slog.Logger) *App {
	ledgerService := ledger.New(store, cat, clk, logger)
	aggregateService := aggregate.New(store, logger)
	renderer := report.NewTextRenderer()

	return &App{
		Storage:          store,
		Clock:            clk,
		Catalog:          cat,
		LedgerService:    ledgerService,
		AggregateService: aggregateService,
		Renderer:         renderer,
	}
}
