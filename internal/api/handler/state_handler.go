package handler

import (
	"net/http"

	"github.com/vigilhub/attention-escalator/internal/engine"
)

// StateHandler serves the observable engine state the rendering
// collaborator polls.
type StateHandler struct {
	eng *engine.Engine
}

func NewStateHandler(eng *engine.Engine) *StateHandler {
	return &StateHandler{eng: eng}
}

// Get handles GET /api/v1/state
func (h *StateHandler) Get(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.eng.State())
}
