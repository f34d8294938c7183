package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/vigilhub/attention-escalator/internal/engine"
)

// PermissionHandler serves the permission-request endpoints. Both requests
// represent user gestures relayed by the rendering client.
type PermissionHandler struct {
	eng    *engine.Engine
	logger *zap.Logger
}

func NewPermissionHandler(eng *engine.Engine, logger *zap.Logger) *PermissionHandler {
	return &PermissionHandler{eng: eng, logger: logger}
}

// RequestPush handles POST /api/v1/permissions/push
//
// Blocks until the platform prompt resolves. Denial and platform absence
// both come back as granted=false, never as an error status.
func (h *PermissionHandler) RequestPush(w http.ResponseWriter, r *http.Request) {
	granted := h.eng.RequestNotificationPermission(r.Context())
	respondJSON(w, http.StatusOK, map[string]bool{"granted": granted})
}

// GrantAudio handles POST /api/v1/permissions/audio
func (h *PermissionHandler) GrantAudio(w http.ResponseWriter, r *http.Request) {
	h.eng.EnableAudioNotifications()
	respondJSON(w, http.StatusOK, map[string]bool{"granted": true})
}
