package handler

import (
	"net/http"

	"github.com/giufus/workout-streak-bot/internal/api/response"
	"github.com/giufus/workout-streak-bot/internal/services/ledger"
)

// AdminHandler handles privileged maintenance endpoints.
// Authentication happens in middleware; handlers here assume the caller
// is already authorized.
type AdminHandler struct {
	ledger ledger.ServiceInterface
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(ledgerService ledger.ServiceInterface) *AdminHandler {
	return &AdminHandler{
		ledger: ledgerService,
	}
}

// HardReset handles POST /api/v1/admin/reset
func (h *AdminHandler) HardReset(w http.ResponseWriter, r *http.Request) {
	if err := h.ledger.HardReset(r.Context()); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}
