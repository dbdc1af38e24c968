package handler

import (
	"net/http"

	"github.com/codellyson/moodmingle/internal/session"
)

// ProtectedHandler serves the members-only page. It must be mounted behind
// auth.Middleware.RequireAuth.
type ProtectedHandler struct {
	sessions *session.Store
}

// NewProtectedHandler creates a new ProtectedHandler.
func NewProtectedHandler(s *session.Store) *ProtectedHandler {
	return &ProtectedHandler{sessions: s}
}

// Show serves GET /protected.
func (h *ProtectedHandler) Show(w http.ResponseWriter, r *http.Request) {
	render(w, r, "protected.html", newBasePage(h.sessions.Current(r.Context())))
}
