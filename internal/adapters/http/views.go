package web

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/gorilla/csrf"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"crudtask/internal/adapters/http/middleware"
	"crudtask/internal/domain/task"
	"crudtask/internal/domain/user"
)

//go:embed templates/*.html
var templateFS embed.FS

// mdRenderer is a goldmark instance configured for safe HTML output.
// Raw HTML in markdown input is escaped (WithUnsafe is NOT set), preventing XSS.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// renderView renders a page template inside the layout. Every view receives
// the session-derived nav state through the func map, so page data stays
// page-specific.
func renderView(w http.ResponseWriter, r *http.Request, templateName string, data any) {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	role := ""
	name := ""
	if ok {
		role = sess.Role
		name = sess.Name
	}

	funcMap := template.FuncMap{
		"currentRole": func() string { return role },
		"currentName": func() string { return name },
		"isLoggedIn":  func() bool { return role != "" },
		"isAdmin":     func() bool { return role == user.RoleAdmin },
		"csrfToken":   func() string { return csrf.Token(r) },
		"initials":    user.Initials,
		"statusLabel": task.StatusLabel,
		"renderMarkdown": func(md string) template.HTML {
			var buf bytes.Buffer
			if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
				return template.HTML(template.HTMLEscapeString(md))
			}
			return template.HTML(buf.String())
		},
	}

	tpl, err := template.New("layout.html").Funcs(funcMap).ParseFS(templateFS,
		"templates/layout.html", "templates/"+templateName)
	if err != nil {
		http.Error(w, "Template error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tpl.Execute(w, data); err != nil {
		http.Error(w, "Render error: "+err.Error(), http.StatusInternalServerError)
		return
	}
}

// renderError is the dispatcher's blanket catch: log the real error, show a
// generic page. Domain errors never reach here; handlers render those inline.
func renderError(w http.ResponseWriter, r *http.Request, err error) {
	slog.Error("handler_error", "path", r.URL.Path, "error", err.Error())
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	renderView(w, r, "error.html", map[string]any{
		"Title": "Something went wrong",
	})
}

// handleNotFound renders the 404 page for any path outside the route table.
func handleNotFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	renderView(w, r, "notfound.html", map[string]any{
		"Title": "Page not found",
		"Path":  r.URL.Path,
	})
}
