// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render provides HTML template rendering for both surfaces of the
// site: the public portfolio and the admin panel. It supports full-page
// and HTMX partial rendering, automatically detecting the request type via
// the HX-Request header, plus named-fragment rendering for the public feed
// (feed pages, the category password prompt, the filter bar).
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/http"

	"framelight/internal/markdown"
	"framelight/internal/media"
	"framelight/internal/middleware"
	"framelight/internal/session"
)

//go:embed templates/admin/*.html
var adminFS embed.FS

//go:embed templates/public/*.html
var publicFS embed.FS

// PageData holds all data passed to templates.
type PageData struct {
	Title     string         // Page title for <title> tag
	Section   string         // Active sidebar section (e.g., "dashboard", "portfolio")
	Session   *session.Data  // Current admin session (nil if unauthenticated)
	CSRFToken string         // CSRF token for forms and HTMX headers
	Data      map[string]any // Page-specific data
	Flashes   []Flash        // One-time notification messages
}

// Flash represents a one-time notification message displayed to the user.
type Flash struct {
	Type    string // "success", "error", "warning", "info"
	Message string
}

// Renderer handles template parsing and execution for both surfaces.
type Renderer struct {
	admin   map[string]*template.Template
	public  *template.Template
	funcMap template.FuncMap
}

// standaloneTemplates lists admin templates that render as full HTML pages
// without the base layout (they have their own <html>, <head>, etc.).
var standaloneTemplates = map[string]bool{
	"login":      true,
	"2fa_setup":  true,
	"2fa_verify": true,
}

// New creates a Renderer by parsing all templates from the embedded
// filesystems. Admin page templates are paired with the admin base layout;
// public templates form a single set so fragments can reference each other.
// When devMode is true, templates use CDN-hosted assets (TailwindCSS,
// HTMX); when false, they reference compiled local static files.
func New(devMode bool) (*Renderer, error) {
	r := &Renderer{
		admin: make(map[string]*template.Template),
		funcMap: template.FuncMap{
			"activeClass": func(current, target string) string {
				if current == target {
					return "bg-gray-900 text-white"
				}
				return "text-gray-300 hover:bg-gray-700 hover:text-white"
			},
			// deref safely dereferences a string pointer for use in templates.
			"deref": func(s *string) string {
				if s == nil {
					return ""
				}
				return *s
			},
			// isDev returns true when the app runs in development mode.
			// Used by templates to conditionally load CDN vs local assets.
			"isDev": func() bool {
				return devMode
			},
			// mediaKind classifies a portfolio item URL for template
			// branching: "image", "video", or "youtube".
			"mediaKind": func(url string) string {
				return media.Classify(url).String()
			},
			// embedURL converts a YouTube link into its player URL.
			"embedURL": media.EmbedURL,
			// markdown renders Markdown source (team bios) as HTML.
			"markdown": func(source string) template.HTML {
				out, err := markdown.ToHTML(source)
				if err != nil {
					return ""
				}
				return template.HTML(out)
			},
			"add": func(a, b int) int { return a + b },
		},
	}

	if err := r.parseAdmin(); err != nil {
		return nil, err
	}
	if err := r.parsePublic(); err != nil {
		return nil, err
	}
	return r, nil
}

// parseAdmin pairs each admin page template with the base layout.
func (rn *Renderer) parseAdmin() error {
	entries, err := adminFS.ReadDir("templates/admin")
	if err != nil {
		return fmt.Errorf("read embedded admin templates: %w", err)
	}

	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || name == "base.html" {
			continue
		}

		// Strip .html extension for the template name.
		tmplName := name[:len(name)-len(".html")]

		var tmpl *template.Template
		var parseErr error

		if standaloneTemplates[tmplName] {
			tmpl, parseErr = template.New(name).Funcs(rn.funcMap).ParseFS(
				adminFS, "templates/admin/"+name,
			)
		} else {
			tmpl, parseErr = template.New("base.html").Funcs(rn.funcMap).ParseFS(
				adminFS, "templates/admin/base.html", "templates/admin/"+name,
			)
		}

		if parseErr != nil {
			return fmt.Errorf("parse admin template %s: %w", name, parseErr)
		}

		rn.admin[tmplName] = tmpl
	}
	return nil
}

// parsePublic parses all public templates into one set.
func (rn *Renderer) parsePublic() error {
	tmpl, err := template.New("public").Funcs(rn.funcMap).ParseFS(
		publicFS, "templates/public/*.html",
	)
	if err != nil {
		return fmt.Errorf("parse public templates: %w", err)
	}
	rn.public = tmpl
	return nil
}

// AdminPage renders a full admin page or an HTMX partial, depending on the
// request headers. For HTMX requests, only the "content" block is sent.
// For full page loads, the entire base layout is rendered.
func (rn *Renderer) AdminPage(w http.ResponseWriter, r *http.Request, name string, data *PageData) {
	tmpl, ok := rn.admin[name]
	if !ok {
		http.Error(w, fmt.Sprintf("template %q not found", name), http.StatusInternalServerError)
		return
	}

	rn.inject(r, data)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	// HTMX request: render only the content fragment.
	if IsHTMX(r) && !standaloneTemplates[name] {
		if err := executeTemplate(w, tmpl, "content", data); err != nil {
			http.Error(w, "template error", http.StatusInternalServerError)
		}
		return
	}

	// Full page request: render the complete layout.
	execName := "base.html"
	// Standalone pages use their own root template (not base.html).
	if standaloneTemplates[name] {
		execName = name + ".html"
	}

	if err := executeTemplate(w, tmpl, execName, data); err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}

// PublicPage renders the full public page (the base layout).
func (rn *Renderer) PublicPage(w http.ResponseWriter, r *http.Request, data *PageData) {
	rn.inject(r, data)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := executeTemplate(w, rn.public, "base.html", data); err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}

// Fragment renders one named public template (a feed page, the password
// prompt, the filter bar) for an HTMX swap.
func (rn *Renderer) Fragment(w http.ResponseWriter, r *http.Request, name string, data *PageData) {
	rn.inject(r, data)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := executeTemplate(w, rn.public, name, data); err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}

// PublicHTML renders the full public page to an arbitrary writer. Used by
// the page cache to capture the homepage body.
func (rn *Renderer) PublicHTML(w io.Writer, data *PageData) error {
	return executeTemplate(w, rn.public, "base.html", data)
}

// inject fills request-derived fields: CSRF token and admin session.
func (rn *Renderer) inject(r *http.Request, data *PageData) {
	if data.CSRFToken == "" {
		data.CSRFToken = middleware.GetCSRFToken(r)
	}
	if data.Session == nil {
		data.Session = middleware.SessionFromCtx(r.Context())
	}
}

// executeTemplate wraps template execution with error handling.
func executeTemplate(w io.Writer, tmpl *template.Template, name string, data any) error {
	return tmpl.ExecuteTemplate(w, name, data)
}

// IsHTMX returns true if the request was made by HTMX (has HX-Request header).
func IsHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}
