package handler

import (
	"net/http"

	"github.com/giufus/workout-streak-bot/internal/api/response"
	"github.com/giufus/workout-streak-bot/internal/model"
	"github.com/giufus/workout-streak-bot/internal/services/aggregate"
	"github.com/giufus/workout-streak-bot/internal/storage"
)

// ViewsHandler handles read-only aggregate endpoints
type ViewsHandler struct {
	aggregate aggregate.ServiceInterface
	storage   storage.Storage
}

// NewViewsHandler creates a new views handler
func NewViewsHandler(aggregateService aggregate.ServiceInterface, store storage.Storage) *ViewsHandler {
	return &ViewsHandler{
		aggregate: aggregateService,
		storage:   store,
	}
}

// Summary handles GET /api/v1/players/{id}/summary
func (h *ViewsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	playerID, err := playerIDFromPath(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	rows, err := h.aggregate.BuildPlayerSummary(r.Context(), playerID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SummaryFromModel(playerID, rows))
}

// Leaderboard handles GET /api/v1/leaderboard
func (h *ViewsHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	matrix, err := h.aggregate.BuildLeaderboardMatrix(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.LeaderboardFromModel(matrix))
}

// Exercises handles GET /api/v1/exercises
func (h *ViewsHandler) Exercises(w http.ResponseWriter, r *http.Request) {
	details, err := h.storage.ListExerciseDetails(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	if len(details) == 0 {
		WriteError(w, model.ErrCatalogNotSeeded)
		return
	}

	response.JSON(w, http.StatusOK, response.ExercisesFromModel(details))
}

// Health handles GET /api/v1/health
func (h *ViewsHandler) Health(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
