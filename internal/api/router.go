package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/giufus/workout-streak-bot/internal/api/handler"
	"github.com/giufus/workout-streak-bot/internal/api/middleware"
	"github.com/giufus/workout-streak-bot/internal/catalog"
	"github.com/giufus/workout-streak-bot/internal/services/aggregate"
	"github.com/giufus/workout-streak-bot/internal/services/ledger"
	"github.com/giufus/workout-streak-bot/internal/storage"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger           *slog.Logger
	Catalog          *catalog.Catalog
	Storage          storage.Storage
	LedgerService    ledger.ServiceInterface
	AggregateService aggregate.ServiceInterface
	AdminToken       string
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	progressHandler := handler.NewProgressHandler(cfg.Catalog, cfg.LedgerService)
	viewsHandler := handler.NewViewsHandler(cfg.AggregateService, cfg.Storage)
	adminHandler := handler.NewAdminHandler(cfg.LedgerService)

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)
	adminAuthMiddleware := middleware.AdminAuth(cfg.AdminToken)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Score mutations
	api.HandleFunc("/progress", progressHandler.Record).Methods(http.MethodPost)
	api.HandleFunc("/players/{id}/reset", progressHandler.Reset).Methods(http.MethodPost)

	// Read-only views
	api.HandleFunc("/players/{id}/summary", viewsHandler.Summary).Methods(http.MethodGet)
	api.HandleFunc("/leaderboard", viewsHandler.Leaderboard).Methods(http.MethodGet)
	api.HandleFunc("/exercises", viewsHandler.Exercises).Methods(http.MethodGet)

	// Admin routes (token required)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(adminAuthMiddleware)
	admin.HandleFunc("/reset", adminHandler.HardReset).Methods(http.MethodPost)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", viewsHandler.Health).Methods(http.MethodGet)

	return r
}
