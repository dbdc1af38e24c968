package handler

import (
	"net/http"

	"github.com/codellyson/moodmingle/internal/session"
)

// LandingHandler serves the public marketing page.
type LandingHandler struct {
	sessions *session.Store
}

// NewLandingHandler creates a new LandingHandler.
func NewLandingHandler(s *session.Store) *LandingHandler {
	return &LandingHandler{sessions: s}
}

type landingPage struct {
	BasePage
	Hero         Hero
	Services     []Service
	Testimonials []Testimonial
}

// Index serves GET /.
func (h *LandingHandler) Index(w http.ResponseWriter, r *http.Request) {
	render(w, r, "landing.html", landingPage{
		BasePage:     newBasePage(h.sessions.Current(r.Context())),
		Hero:         hero,
		Services:     services,
		Testimonials: testimonials,
	})
}
