package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/vigilhub/attention-escalator/internal/directory"
)

// DirectoryHandler proxies the external user-directory service so the
// rendering client has a single origin to talk to. Plain data plumbing:
// no engine logic runs here.
type DirectoryHandler struct {
	dir    *directory.Client
	logger *zap.Logger
}

func NewDirectoryHandler(dir *directory.Client, logger *zap.Logger) *DirectoryHandler {
	return &DirectoryHandler{dir: dir, logger: logger}
}

// ListItems handles GET /api/v1/items
func (h *DirectoryHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.dir.ListWorkItems(r.Context())
	if err != nil {
		h.logger.Error("directory item listing failed", zap.Error(err))
		mapError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

// ListUsers handles GET /api/v1/users
func (h *DirectoryHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.dir.ListUsers(r.Context())
	if err != nil {
		h.logger.Error("directory user listing failed", zap.Error(err))
		mapError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, users)
}

// GetUser handles GET /api/v1/users/{id}
func (h *DirectoryHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	u, err := h.dir.GetUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		mapError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, u)
}

// CreateUser handles POST /api/v1/users
func (h *DirectoryHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var u directory.User
	if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.dir.CreateUser(r.Context(), u)
	if err != nil {
		h.logger.Error("directory user creation failed", zap.Error(err))
		mapError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// UpdateUser handles PUT /api/v1/users/{id}
func (h *DirectoryHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var u directory.User
	if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.dir.UpdateUser(r.Context(), chi.URLParam(r, "id"), u)
	if err != nil {
		mapError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

// DeleteUser handles DELETE /api/v1/users/{id}
func (h *DirectoryHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.dir.DeleteUser(r.Context(), chi.URLParam(r, "id")); err != nil {
		mapError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
