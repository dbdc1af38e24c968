package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/codellyson/moodmingle/internal/auth"
	"github.com/codellyson/moodmingle/internal/session"
)

// LoginHandler serves the login form and the login and logout actions.
type LoginHandler struct {
	sessions *session.Store
	logger   *slog.Logger
}

// NewLoginHandler creates a new LoginHandler.
func NewLoginHandler(s *session.Store, logger *slog.Logger) *LoginHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoginHandler{sessions: s, logger: logger}
}

type loginPage struct {
	BasePage
	From       string // path that triggered the guard, "" when none
	RedirectTo string
	Username   string
	Error      string
}

// Form serves GET /login. Signed-in visitors never get here; the route is
// mounted behind auth.Middleware.RedirectAuthenticated.
func (h *LoginHandler) Form(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get(auth.FromParam)
	target := auth.SafeRedirect(from)
	if target == auth.HomePath {
		from = ""
	}
	render(w, r, "login.html", loginPage{
		BasePage:   newBasePage(h.sessions.Current(r.Context())),
		From:       from,
		RedirectTo: target,
	})
}

// Submit serves POST /login. A failed attempt re-renders the form with the
// message and the submitted username; success redirects to the target.
func (h *LoginHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	attempt := auth.AttemptFromRequest(r)

	res, err := auth.Login(r.Context(), h.sessions, attempt)
	if err != nil {
		h.actionFailed(w, r, "login", err)
		return
	}
	if res.Error != "" {
		renderStatus(w, r, http.StatusUnprocessableEntity, "login.html", loginPage{
			BasePage:   newBasePage(h.sessions.Current(r.Context())),
			RedirectTo: attempt.RedirectTo,
			Username:   attempt.Username,
			Error:      res.Error,
		})
		return
	}
	redirect(w, r, res.Redirect)
}

// Logout serves POST /logout.
func (h *LoginHandler) Logout(w http.ResponseWriter, r *http.Request) {
	res, err := auth.Logout(r.Context(), h.sessions)
	if err != nil {
		h.actionFailed(w, r, "logout", err)
		return
	}
	redirect(w, r, res.Redirect)
}

func (h *LoginHandler) actionFailed(w http.ResponseWriter, r *http.Request, action string, err error) {
	// The visitor navigated away mid-request; nobody is left to answer.
	if errors.Is(err, context.Canceled) {
		h.logger.DebugContext(r.Context(), action+" abandoned", slog.Any("error", err))
		return
	}
	h.logger.ErrorContext(r.Context(), action+" failed", slog.Any("error", err))
	http.Error(w, "internal error", http.StatusInternalServerError)
}
