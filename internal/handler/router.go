package handler

import (
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/codellyson/moodmingle/internal/auth"
	"github.com/codellyson/moodmingle/internal/session"
	"github.com/codellyson/moodmingle/web"
)

// Deps holds all dependencies required to build the HTTP router.
type Deps struct {
	Sessions       *session.Store
	AuthMiddleware *auth.Middleware
	Logger         *slog.Logger
}

// NewRouter assembles the full chi router with all middleware and routes.
func NewRouter(deps Deps) http.Handler {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()

	// Standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(securityHeaders)

	// Static assets (embedded). Use fs.Sub so the file server sees
	// css/app.css and js/app.js directly, not static/css/... paths.
	staticSub, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		panic("failed to sub static FS: " + err.Error())
	}
	r.Handle("/static/*", http.StripPrefix("/static", http.FileServer(http.FS(staticSub))))

	// Operational endpoints carry no session.
	r.Get("/healthz", Healthz)
	r.Handle("/metrics", promhttp.Handler())

	landing := NewLandingHandler(deps.Sessions)
	login := NewLoginHandler(deps.Sessions, logger)
	protected := NewProtectedHandler(deps.Sessions)

	r.Group(func(r chi.Router) {
		r.Use(deps.Sessions.LoadAndSave)

		r.Get("/", landing.Index)

		r.With(deps.AuthMiddleware.RedirectAuthenticated).Get("/login", login.Form)
		r.Post("/login", login.Submit)

		// Sign-out is a form action only; GET /logout is deliberately unrouted.
		r.Post("/logout", login.Logout)

		r.With(deps.AuthMiddleware.RequireAuth).Get("/protected", protected.Show)
	})

	return r
}

// Healthz serves GET /healthz.
func Healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}
