package auth

import (
	"testing"

	"github.com/codellyson/moodmingle/internal/session"
)

func TestGuard(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		sess     session.Session
		wantOK   bool
		wantDest string
	}{
		{"signed out protected", "/protected", session.Session{}, false, "/login?from=%2Fprotected"},
		{"signed out nested", "/protected/moods", session.Session{}, false, "/login?from=%2Fprotected%2Fmoods"},
		{"signed out root", "/", session.Session{}, false, "/login"},
		{"signed in", "/protected", session.Session{Authenticated: true, Username: "alice"}, true, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dest, ok := Guard(tt.path, tt.sess)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if dest != tt.wantDest {
				t.Errorf("redirect = %q, want %q", dest, tt.wantDest)
			}
		})
	}
}

func TestGuestOnly(t *testing.T) {
	if dest, ok := GuestOnly(session.Session{}); !ok || dest != "" {
		t.Errorf("GuestOnly(signed out) = (%q, %v), want (\"\", true)", dest, ok)
	}
	dest, ok := GuestOnly(session.Session{Authenticated: true, Username: "bob"})
	if ok || dest != "/" {
		t.Errorf("GuestOnly(signed in) = (%q, %v), want (\"/\", false)", dest, ok)
	}
}

func TestSafeRedirect(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "/"},
		{"/", "/"},
		{"/protected", "/protected"},
		{"/protected?tab=week", "/protected?tab=week"},
		{"protected", "/"},
		{"//evil.example", "/"},
		{`/\evil.example`, "/"},
		{"https://evil.example/protected", "/"},
		{"javascript:alert(1)", "/"},
	}
	for _, tt := range tests {
		if got := SafeRedirect(tt.in); got != tt.want {
			t.Errorf("SafeRedirect(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
