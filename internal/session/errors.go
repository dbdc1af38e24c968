package session

import "errors"

var (
	// ErrValidation is returned when a sign-in is attempted without a username.
	ErrValidation = errors.New("username is required")

	// ErrAuthenticationFailure is returned when credentials are rejected.
	// The in-memory store accepts every non-empty username, so nothing
	// produces it yet.
	ErrAuthenticationFailure = errors.New("authentication failed")
)
