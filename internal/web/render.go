// Package web renders the server-side HTML pages.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"fyyur/internal/domain/genres"
)

//go:embed templates
var files embed.FS

const (
	mediumLayout = "Mon 01, 02, 2006 3:04PM"
	fullLayout   = "Monday January, 2, 2006 at 3:04PM"
)

// FormatDatetime renders t in the "medium" layout, or the "full" one when
// asked for by name.
func FormatDatetime(t time.Time, format ...string) string {
	if len(format) > 0 && format[0] == "full" {
		return t.Format(fullLayout)
	}
	return t.Format(mediumLayout)
}

var funcs = template.FuncMap{
	"datetime": FormatDatetime,
	"hasGenre": genres.Contains,
	"join":     strings.Join,
}

type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses every page under templates/ together with the base layout.
// Pages are addressed by their path below templates/, e.g. "pages/home.html".
func NewRenderer() (*Renderer, error) {
	paths, err := fs.Glob(files, "templates/*/*.html")
	if err != nil {
		return nil, err
	}

	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, p := range paths {
		if strings.HasPrefix(p, "templates/layouts/") {
			continue
		}
		t, err := template.New("base").Funcs(funcs).ParseFS(files, "templates/layouts/*.html", p)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", p, err)
		}
		r.pages[strings.TrimPrefix(p, "templates/")] = t
	}
	return r, nil
}

// Render executes the page into a buffer first so a template error never
// leaves a half-written response behind.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data any) error {
	t, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("template %q does not exist", page)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "base", data); err != nil {
		return fmt.Errorf("render %s: %w", page, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
