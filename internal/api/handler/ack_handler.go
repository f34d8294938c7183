package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/vigilhub/attention-escalator/internal/engine"
)

// AckHandler serves the acknowledgment endpoints.
type AckHandler struct {
	eng    *engine.Engine
	logger *zap.Logger
}

func NewAckHandler(eng *engine.Engine, logger *zap.Logger) *AckHandler {
	return &AckHandler{eng: eng, logger: logger}
}

// Acknowledge handles POST /api/v1/acknowledgments/{id}
func (h *AckHandler) Acknowledge(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		respondError(w, http.StatusBadRequest, "id is required")
		return
	}

	h.eng.AcknowledgeItem(id)
	respondJSON(w, http.StatusOK, map[string]string{"acknowledged": id})
}

// AcknowledgeAll handles POST /api/v1/acknowledgments
//
// Bulk acknowledgment is the "user has seen everything" action: it also
// silences any active tab alert.
func (h *AckHandler) AcknowledgeAll(w http.ResponseWriter, r *http.Request) {
	var req itemsRequest
	if err := req.decode(r); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.eng.AcknowledgeAll(req.Items)
	respondJSON(w, http.StatusOK, map[string]int{"acknowledged": len(req.Items)})
}

// Reset handles DELETE /api/v1/acknowledgments
func (h *AckHandler) Reset(w http.ResponseWriter, r *http.Request) {
	h.eng.ResetAcknowledgedItems()
	respondJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}
