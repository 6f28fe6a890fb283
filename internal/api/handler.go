// Package api provides the operator-facing HTTP endpoints of the bot.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/NapierNLP/sgge/internal/session"
	"github.com/NapierNLP/sgge/internal/store"
	"github.com/go-chi/chi/v5"
)

// Handler serves health and session-inventory endpoints.
type Handler struct {
	repo     store.Repository
	registry *session.Registry
}

// NewHandler creates a Handler.
func NewHandler(repo store.Repository, registry *session.Registry) *Handler {
	return &Handler{repo: repo, registry: registry}
}

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"error": "failed to encode response"}`, http.StatusInternalServerError)
	}
}

// Error writes a JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

// RegisterRoutes mounts the ops endpoints on the router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/health", h.Health)
	r.Get("/api/rooms", h.Rooms)
}

// Health reports readiness, including audit sink connectivity.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.Ping(r.Context()); err != nil {
		Error(w, http.StatusServiceUnavailable, "audit store unreachable")
		return
	}
	JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Rooms lists the rooms with an active session.
func (h *Handler) Rooms(w http.ResponseWriter, _ *http.Request) {
	ids := h.registry.RoomIDs()
	JSON(w, http.StatusOK, map[string]any{
		"count":    len(ids),
		"room_ids": ids,
	})
}
