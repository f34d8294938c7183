package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/vigilhub/attention-escalator/internal/domain"
	"github.com/vigilhub/attention-escalator/internal/engine"
)

// PreferenceHandler serves the notification preference endpoint.
type PreferenceHandler struct {
	eng    *engine.Engine
	logger *zap.Logger
}

func NewPreferenceHandler(eng *engine.Engine, logger *zap.Logger) *PreferenceHandler {
	return &PreferenceHandler{eng: eng, logger: logger}
}

// Update handles PATCH /api/v1/preferences
//
// The body is a partial update: enabled shallow-merges, tiers deep-merge.
// Returns the merged preferences so the client can re-render immediately.
func (h *PreferenceHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch domain.PreferencesPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	merged := h.eng.UpdatePreferences(patch)
	respondJSON(w, http.StatusOK, merged)
}
