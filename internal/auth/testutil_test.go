package auth

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/codellyson/moodmingle/internal/session"
)

// newTestStore returns a zero-delay Store and a context carrying a freshly
// loaded, empty session.
func newTestStore(t *testing.T) (*session.Store, context.Context) {
	t.Helper()
	sm := session.NewSessionManager(time.Hour, "test_session", false)
	ctx, err := sm.Load(context.Background(), "")
	if err != nil {
		t.Fatalf("load session: %v", err)
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return session.NewStore(sm, 0, logger), ctx
}

// signedIn returns a context in which username is signed in.
func signedIn(t *testing.T, s *session.Store, ctx context.Context, username string) context.Context {
	t.Helper()
	if err := s.SignIn(ctx, username); err != nil {
		t.Fatalf("SignIn(%q): %v", username, err)
	}
	return ctx
}

// okHandler is a simple handler that returns 200.
func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
}
