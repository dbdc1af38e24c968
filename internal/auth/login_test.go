package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func TestLogin_EmptyUsername(t *testing.T) {
	s, ctx := newTestStore(t)

	res, err := Login(ctx, s, LoginAttempt{Username: "", RedirectTo: "/"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if res.Error != MsgUsernameRequired {
		t.Errorf("Error = %q, want %q", res.Error, MsgUsernameRequired)
	}
	if res.Redirect != "" {
		t.Errorf("Redirect = %q, want empty", res.Redirect)
	}
	if s.IsAuthenticated(ctx) {
		t.Error("authenticated after empty username")
	}
}

func TestLogin_WhitespaceUsername(t *testing.T) {
	s, ctx := newTestStore(t)

	res, err := Login(ctx, s, LoginAttempt{Username: "   "})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if res.Error != MsgUsernameRequired {
		t.Errorf("Error = %q, want %q", res.Error, MsgUsernameRequired)
	}
}

func TestLogin_SuccessDefaultsHome(t *testing.T) {
	s, ctx := newTestStore(t)

	res, err := Login(ctx, s, LoginAttempt{Username: "alice"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if res.Redirect != "/" || res.Error != "" {
		t.Errorf("result = %+v, want redirect to /", res)
	}
	got := s.Current(ctx)
	if !got.Authenticated || got.Username != "alice" {
		t.Errorf("session = %+v, want alice", got)
	}
}

func TestLogin_SuccessRedirectsToTarget(t *testing.T) {
	s, ctx := newTestStore(t)

	res, err := Login(ctx, s, LoginAttempt{Username: "bob", RedirectTo: "/protected"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if res.Redirect != "/protected" {
		t.Errorf("Redirect = %q, want /protected", res.Redirect)
	}
}

func TestLogin_RejectsOffsiteTarget(t *testing.T) {
	s, ctx := newTestStore(t)

	res, err := Login(ctx, s, LoginAttempt{Username: "bob", RedirectTo: "https://evil.example"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if res.Redirect != "/" {
		t.Errorf("Redirect = %q, want /", res.Redirect)
	}
}

func TestLogin_Cancelled(t *testing.T) {
	s, ctx := newTestStore(t)
	cctx, cancel := context.WithCancel(ctx)
	cancel()

	_, err := Login(cctx, s, LoginAttempt{Username: "alice"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if s.IsAuthenticated(ctx) {
		t.Error("cancelled login signed the user in")
	}
}

func TestLogout(t *testing.T) {
	tests := []struct {
		name     string
		signedIn bool
	}{
		{"while signed in", true},
		{"while signed out", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, ctx := newTestStore(t)
			if tt.signedIn {
				ctx = signedIn(t, s, ctx, "alice")
			}
			res, err := Logout(ctx, s)
			if err != nil {
				t.Fatalf("Logout: %v", err)
			}
			if res.Redirect != "/" {
				t.Errorf("Redirect = %q, want /", res.Redirect)
			}
			if s.IsAuthenticated(ctx) {
				t.Error("still authenticated after logout")
			}
		})
	}
}

func TestAttemptFromRequest(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		form       url.Values
		wantUser   string
		wantTarget string
	}{
		{"explicit redirectTo", "/login?from=%2Fother", url.Values{"username": {"bob"}, "redirectTo": {"/protected"}}, "bob", "/protected"},
		{"falls back to from", "/login?from=%2Fprotected", url.Values{"username": {" bob "}}, "bob", "/protected"},
		{"falls back to home", "/login", url.Values{"username": {"alice"}}, "alice", "/"},
		{"offsite from", "/login?from=%2F%2Fevil.example", url.Values{"username": {"alice"}}, "alice", "/"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, tt.target, strings.NewReader(tt.form.Encode()))
			r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			a := AttemptFromRequest(r)
			if a.Username != tt.wantUser {
				t.Errorf("Username = %q, want %q", a.Username, tt.wantUser)
			}
			if a.RedirectTo != tt.wantTarget {
				t.Errorf("RedirectTo = %q, want %q", a.RedirectTo, tt.wantTarget)
			}
		})
	}
}
