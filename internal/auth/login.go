package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/codellyson/moodmingle/internal/metrics"
	"github.com/codellyson/moodmingle/internal/session"
)

// Form field names posted by the login page.
const (
	UsernameField   = "username"
	RedirectToField = "redirectTo"
)

// User-facing messages for recoverable login failures.
const (
	MsgUsernameRequired = "You must provide a username to log in"
	MsgInvalidLogin     = "Invalid username or password"
)

// LoginAttempt is a single login form submission.
type LoginAttempt struct {
	Username   string
	RedirectTo string
}

// AttemptFromRequest builds a LoginAttempt from a parsed form. redirectTo
// falls back to the from query parameter and then to HomePath.
func AttemptFromRequest(r *http.Request) LoginAttempt {
	target := r.PostFormValue(RedirectToField)
	if target == "" {
		target = r.URL.Query().Get(FromParam)
	}
	return LoginAttempt{
		Username:   strings.TrimSpace(r.PostFormValue(UsernameField)),
		RedirectTo: SafeRedirect(target),
	}
}

// ActionResult is the outcome of a form action: either a redirect or an error
// message for the form to display. Exactly one field is set.
type ActionResult struct {
	Redirect string
	Error    string
}

// Login signs the attempt's user in. Validation and credential failures are
// reported through ActionResult.Error; any other failure is returned.
func Login(ctx context.Context, store *session.Store, attempt LoginAttempt) (ActionResult, error) {
	if attempt.Username == "" {
		metrics.SignInsTotal.WithLabelValues("invalid").Inc()
		return ActionResult{Error: MsgUsernameRequired}, nil
	}

	err := store.SignIn(ctx, attempt.Username)
	switch {
	case err == nil:
		metrics.SignInsTotal.WithLabelValues("success").Inc()
		return ActionResult{Redirect: SafeRedirect(attempt.RedirectTo)}, nil
	case errors.Is(err, session.ErrValidation):
		metrics.SignInsTotal.WithLabelValues("invalid").Inc()
		return ActionResult{Error: MsgUsernameRequired}, nil
	case errors.Is(err, session.ErrAuthenticationFailure):
		metrics.SignInsTotal.WithLabelValues("rejected").Inc()
		return ActionResult{Error: MsgInvalidLogin}, nil
	default:
		metrics.SignInsTotal.WithLabelValues("error").Inc()
		return ActionResult{}, err
	}
}

// Logout signs the current user out and always sends the visitor home.
func Logout(ctx context.Context, store *session.Store) (ActionResult, error) {
	if err := store.SignOut(ctx); err != nil {
		return ActionResult{}, err
	}
	metrics.SignOutsTotal.Inc()
	return ActionResult{Redirect: HomePath}, nil
}
