package handler

import (
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/codellyson/moodmingle/internal/build"
	"github.com/codellyson/moodmingle/internal/session"
	"github.com/codellyson/moodmingle/web"
)

// BasePage carries layout-level data available to every template.
// Pages receive the session explicitly through it; templates never look it up.
type BasePage struct {
	Session session.Session
	Version string
}

func newBasePage(s session.Session) BasePage {
	return BasePage{Session: s, Version: build.Version}
}

// pageCache maps a page file name (e.g. "login.html") to a compiled template
// set containing base.html + partials + that one page file. Each page gets its
// own set so {{define "content"}} blocks don't collide.
var pageCache map[string]*template.Template

func init() {
	var err error
	pageCache, err = parsePages(web.TemplateFS)
	if err != nil {
		panic("build page cache: " + err.Error())
	}
}

func parsePages(fsys fs.FS) (map[string]*template.Template, error) {
	partials, err := fs.Glob(fsys, "templates/partials/*.html")
	if err != nil {
		return nil, fmt.Errorf("glob partials: %w", err)
	}

	pages := make(map[string]*template.Template)
	err = fs.WalkDir(fsys, "templates/pages", func(p string, d fs.DirEntry, e error) error {
		if e != nil || d.IsDir() || !strings.HasSuffix(p, ".html") {
			return e
		}

		files := make([]string, 0, 2+len(partials))
		files = append(files, "templates/base.html")
		files = append(files, partials...)
		files = append(files, p)

		t, err := template.New("").ParseFS(fsys, files...)
		if err != nil {
			return fmt.Errorf("parse %s: %w", p, err)
		}
		pages[filepath.Base(p)] = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return pages, nil
}

// isHTMX returns true when the request was sent by HTMX.
func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// render executes a full-page template (base layout + named page) with 200 OK.
func render(w http.ResponseWriter, r *http.Request, tmpl string, data any) {
	renderStatus(w, r, http.StatusOK, tmpl, data)
}

// renderStatus is render with an explicit status code.
func renderStatus(w http.ResponseWriter, r *http.Request, status int, tmpl string, data any) {
	t, ok := pageCache[tmpl]
	if !ok {
		slog.ErrorContext(r.Context(), "template not found", slog.String("template", tmpl))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	// Execute into a buffer first so a template error doesn't leave a
	// half-written page behind a 200 header.
	var buf strings.Builder
	if err := t.ExecuteTemplate(&buf, "base", data); err != nil {
		slog.ErrorContext(r.Context(), "template error", slog.String("template", tmpl), slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(buf.String()))
}

// redirect finishes a form action. HTMX requests get an HX-Redirect header so
// the whole page navigates; browser forms get 303 See Other.
func redirect(w http.ResponseWriter, r *http.Request, target string) {
	if isHTMX(r) {
		w.Header().Set("HX-Redirect", target)
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
