package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/vigilhub/attention-escalator/internal/domain"
	"github.com/vigilhub/attention-escalator/internal/engine"
)

// itemsRequest wraps a work-item collection posted by the rendering client.
type itemsRequest struct {
	Items []domain.WorkItem `json:"items"`
}

func (r *itemsRequest) decode(req *http.Request) error {
	if err := json.NewDecoder(req.Body).Decode(r); err != nil {
		return err
	}
	for i := range r.Items {
		if err := r.Items[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// EscalationHandler serves the classification and trigger endpoints.
type EscalationHandler struct {
	eng    *engine.Engine
	logger *zap.Logger
}

func NewEscalationHandler(eng *engine.Engine, logger *zap.Logger) *EscalationHandler {
	return &EscalationHandler{eng: eng, logger: logger}
}

// Check handles POST /api/v1/check
//
// Runs one urgency pass over the posted items and returns the
// classification without dispatching anything. The rendering collaborator
// reads the visual tier straight from requires_attention.
func (h *EscalationHandler) Check(w http.ResponseWriter, r *http.Request) {
	var req itemsRequest
	if err := req.decode(r); err != nil {
		h.badRequest(w, err)
		return
	}

	respondJSON(w, http.StatusOK, h.eng.CheckForUrgentItems(req.Items))
}

// Trigger handles POST /api/v1/trigger
//
// Fires the tiered escalation for the posted urgent subset. Always 202:
// dispatch is best-effort and individual tier failures never surface.
func (h *EscalationHandler) Trigger(w http.ResponseWriter, r *http.Request) {
	var req itemsRequest
	if err := req.decode(r); err != nil {
		h.badRequest(w, err)
		return
	}

	h.eng.TriggerUrgentNotifications(r.Context(), req.Items)
	respondJSON(w, http.StatusAccepted, map[string]int{"items": len(req.Items)})
}

func (h *EscalationHandler) badRequest(w http.ResponseWriter, err error) {
	h.logger.Debug("bad escalation request", zap.Error(err))
	switch err {
	case domain.ErrMissingItemID, domain.ErrMissingCurrency:
		mapError(w, err)
	default:
		respondError(w, http.StatusBadRequest, "invalid request body")
	}
}
