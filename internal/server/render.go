package server

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"

	"github.com/leonardomurakami/portfolio/internal/types"
)

// pageNames are the full pages rendered inside the shared layout.
var pageNames = []string{"home", "about", "projects", "contact", "resume"}

// PageData is the context handed to page templates.
type PageData struct {
	Title    string
	Active   string
	Search   string
	Projects []types.Project
}

// PartialData is the context handed to HTMX partial templates.
type PartialData struct {
	Projects     []types.Project
	Search       string
	Error        string
	CurrentTheme string
}

// Renderer executes the embedded HTML templates. Pages are parsed together
// with the layout and shared components; partials are parsed standalone.
type Renderer struct {
	pages    map[string]*template.Template
	partials *template.Template
}

// NewRenderer parses all templates from the given filesystem. Parsing happens
// once at startup, so template errors surface before the server accepts
// traffic.
func NewRenderer(fsys fs.FS) (*Renderer, error) {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		tmpl, err := template.ParseFS(fsys,
			"templates/layout.html",
			"templates/components/project_list.html",
			"templates/pages/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("failed to parse page template %s: %w", name, err)
		}
		pages[name] = tmpl
	}

	partials, err := template.ParseFS(fsys, "templates/components/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse partial templates: %w", err)
	}

	return &Renderer{pages: pages, partials: partials}, nil
}

// Page renders a full page into the response. The template executes into a
// buffer first so a render error can still become a clean 500.
func (rd *Renderer) Page(w http.ResponseWriter, status int, name string, data PageData) {
	tmpl, ok := rd.pages[name]
	if !ok {
		http.Error(w, "page not found: "+name, http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		log.Printf("[render] page %s failed: %v", name, err)
		http.Error(w, "template error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// Partial renders a named component template into the response.
func (rd *Renderer) Partial(w http.ResponseWriter, status int, name string, data PartialData) {
	var buf bytes.Buffer
	if err := rd.partials.ExecuteTemplate(&buf, name, data); err != nil {
		log.Printf("[render] partial %s failed: %v", name, err)
		http.Error(w, "template error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
