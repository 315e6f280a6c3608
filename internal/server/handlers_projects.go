package server

import "net/http"

// handleProjects renders the projects page with the merged, optionally
// filtered project list.
func (s *Server) handleProjects(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	list := s.projects.List(r.Context(), search)

	s.renderer.Page(w, http.StatusOK, "projects", PageData{
		Title:    "Projects",
		Active:   "projects",
		Search:   search,
		Projects: list,
	})
}

// handleProjectSearch renders the project list partial for HTMX live search.
func (s *Server) handleProjectSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	list := s.projects.List(r.Context(), query)

	s.renderer.Partial(w, http.StatusOK, "project_list", PartialData{
		Projects: list,
		Search:   query,
	})
}
