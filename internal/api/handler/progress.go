package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/giufus/workout-streak-bot/internal/api/request"
	"github.com/giufus/workout-streak-bot/internal/api/response"
	"github.com/giufus/workout-streak-bot/internal/catalog"
	"github.com/giufus/workout-streak-bot/internal/model"
	"github.com/giufus/workout-streak-bot/internal/services/ledger"
)

// ProgressHandler handles score-mutating endpoints
type ProgressHandler struct {
	catalog *catalog.Catalog
	ledger  ledger.ServiceInterface
}

// NewProgressHandler creates a new progress handler
func NewProgressHandler(cat *catalog.Catalog, ledgerService ledger.ServiceInterface) *ProgressHandler {
	return &ProgressHandler{
		catalog: cat,
		ledger:  ledgerService,
	}
}

// Record handles POST /api/v1/progress
func (h *ProgressHandler) Record(w http.ResponseWriter, r *http.Request) {
	var req request.RecordProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.PlayerID <= 0 {
		WriteError(w, NewInvalidRequestError("player_id is required"))
		return
	}
	if req.Alias == "" {
		WriteError(w, NewInvalidRequestError("alias is required"))
		return
	}
	if req.Amount <= 0 {
		WriteError(w, model.ErrInvalidAmount)
		return
	}

	exerciseID, err := h.catalog.ResolveAlias(req.Alias)
	if err != nil {
		WriteError(w, err)
		return
	}

	info := model.PlayerInfo{FirstName: req.FirstName, Username: req.Username}
	result, err := h.ledger.RecordProgress(r.Context(), model.PlayerID(req.PlayerID), info, exerciseID, req.Amount)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ProgressFromModel(result))
}

// Reset handles POST /api/v1/players/{id}/reset
func (h *ProgressHandler) Reset(w http.ResponseWriter, r *http.Request) {
	playerID, err := playerIDFromPath(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var req request.ResetExerciseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Alias == "" {
		WriteError(w, NewInvalidRequestError("alias is required"))
		return
	}

	exerciseID, err := h.catalog.ResolveAlias(req.Alias)
	if err != nil {
		WriteError(w, err)
		return
	}

	info := model.PlayerInfo{FirstName: req.FirstName, Username: req.Username}
	if err := h.ledger.ResetExercise(r.Context(), playerID, info, exerciseID); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// playerIDFromPath extracts and validates the {id} path variable
func playerIDFromPath(r *http.Request) (model.PlayerID, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, NewInvalidRequestError("invalid player id")
	}
	return model.PlayerID(id), nil
}
