package auth

import (
	"net/http"

	"github.com/codellyson/moodmingle/internal/metrics"
	"github.com/codellyson/moodmingle/internal/session"
)

// Middleware runs route guards before page handlers.
type Middleware struct {
	sessions *session.Store
}

// NewMiddleware creates a new auth Middleware.
func NewMiddleware(s *session.Store) *Middleware {
	return &Middleware{sessions: s}
}

// RequireAuth redirects to /login?from=<path> if nobody is signed in.
func (m *Middleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		redirect, ok := Guard(r.URL.Path, m.sessions.Current(r.Context()))
		if !ok {
			metrics.GuardRedirectsTotal.WithLabelValues("require_auth").Inc()
			http.Redirect(w, r, redirect, http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RedirectAuthenticated sends signed-in visitors home.
func (m *Middleware) RedirectAuthenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		redirect, ok := GuestOnly(m.sessions.Current(r.Context()))
		if !ok {
			metrics.GuardRedirectsTotal.WithLabelValues("guest_only").Inc()
			http.Redirect(w, r, redirect, http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}
