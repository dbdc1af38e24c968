// Package auth decides who may see which page and turns login form
// submissions into session changes.
package auth

import (
	"net/url"
	"strings"

	"github.com/codellyson/moodmingle/internal/session"
)

const (
	// LoginPath is where unauthenticated visitors are sent.
	LoginPath = "/login"
	// HomePath is the fallback destination after login and after logout.
	HomePath = "/"
	// FromParam carries the originally requested path to the login page.
	FromParam = "from"
)

// Guard allows s through to path, or returns the login URL that will bring
// the visitor back to path after signing in.
func Guard(path string, s session.Session) (redirect string, ok bool) {
	if s.Authenticated {
		return "", true
	}
	return LoginURL(path), false
}

// GuestOnly keeps signed-in visitors off pages that only make sense for
// guests, such as the login form.
func GuestOnly(s session.Session) (redirect string, ok bool) {
	if s.Authenticated {
		return HomePath, false
	}
	return "", true
}

// LoginURL returns the login page URL with from set to path.
func LoginURL(from string) string {
	from = SafeRedirect(from)
	if from == HomePath {
		return LoginPath
	}
	return LoginPath + "?" + url.Values{FromParam: {from}}.Encode()
}

// SafeRedirect returns target if it is a path on this site, HomePath otherwise.
func SafeRedirect(target string) string {
	if target == "" || !strings.HasPrefix(target, "/") {
		return HomePath
	}
	// "//host" and "/\host" are treated as network paths by browsers.
	if strings.HasPrefix(target, "//") || strings.HasPrefix(target, `/\`) {
		return HomePath
	}
	u, err := url.Parse(target)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return HomePath
	}
	return target
}
