// Package session holds the signed-in state of a visitor.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/alexedwards/scs/v2/memstore"
)

const usernameKey = "username"

// Session is a snapshot of a visitor's authentication state.
// Username is non-empty exactly when Authenticated is true.
type Session struct {
	Authenticated bool
	Username      string
}

// NewSessionManager creates an SCS session manager backed by process memory.
// Nothing is written to disk; all sessions are lost when the process exits.
func NewSessionManager(lifetime time.Duration, cookieName string, secureCookies bool) *scs.SessionManager {
	sm := scs.New()
	sm.Store = memstore.New()
	sm.Lifetime = lifetime
	sm.Cookie.Name = cookieName
	sm.Cookie.HttpOnly = true
	sm.Cookie.Secure = secureCookies
	sm.Cookie.SameSite = http.SameSiteLaxMode
	return sm
}

// Store signs visitors in and out. Every operation takes the request context,
// which must have passed through LoadAndSave.
type Store struct {
	sessions *scs.SessionManager
	delay    time.Duration
	logger   *slog.Logger
}

// NewStore wraps sm. delay is the artificial latency of SignIn and SignOut.
func NewStore(sm *scs.SessionManager, delay time.Duration, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{sessions: sm, delay: delay, logger: logger}
}

// LoadAndSave loads the visitor's session before next runs and commits it
// afterwards.
func (s *Store) LoadAndSave(next http.Handler) http.Handler {
	return s.sessions.LoadAndSave(next)
}

// SignIn records username as the signed-in user once the artificial delay has
// elapsed. Signing in again replaces the previous username. If ctx is done
// before the delay elapses the session is left untouched and ctx.Err() is
// returned.
func (s *Store) SignIn(ctx context.Context, username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return ErrValidation
	}
	if err := wait(ctx, s.delay); err != nil {
		return fmt.Errorf("sign in: %w", err)
	}
	if err := s.sessions.RenewToken(ctx); err != nil {
		return fmt.Errorf("renew session token: %w", err)
	}
	s.sessions.Put(ctx, usernameKey, username)
	s.logger.InfoContext(ctx, "signed in", slog.String("username", username))
	return nil
}

// SignOut clears the session once the artificial delay has elapsed. It is a
// no-op beyond the delay when nobody is signed in.
func (s *Store) SignOut(ctx context.Context) error {
	if err := wait(ctx, s.delay); err != nil {
		return fmt.Errorf("sign out: %w", err)
	}
	username := s.sessions.GetString(ctx, usernameKey)
	if err := s.sessions.Destroy(ctx); err != nil {
		return fmt.Errorf("destroy session: %w", err)
	}
	if username != "" {
		s.logger.InfoContext(ctx, "signed out", slog.String("username", username))
	}
	return nil
}

// IsAuthenticated reports whether a user is signed in.
func (s *Store) IsAuthenticated(ctx context.Context) bool {
	return s.Current(ctx).Authenticated
}

// Current returns the session state for ctx.
func (s *Store) Current(ctx context.Context) Session {
	username := s.sessions.GetString(ctx, usernameKey)
	return Session{Authenticated: username != "", Username: username}
}

// wait blocks for d or until ctx is done, whichever comes first.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
