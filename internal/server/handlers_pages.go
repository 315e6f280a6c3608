package server

import "net/http"

// handleHome renders the home page.
func (s *Server) handleHome(w http.ResponseWriter, _ *http.Request) {
	s.renderer.Page(w, http.StatusOK, "home", PageData{Title: "Home", Active: "home"})
}

// handleAbout renders the about page.
func (s *Server) handleAbout(w http.ResponseWriter, _ *http.Request) {
	s.renderer.Page(w, http.StatusOK, "about", PageData{Title: "About", Active: "about"})
}

// handleContactPage renders the contact form.
func (s *Server) handleContactPage(w http.ResponseWriter, _ *http.Request) {
	s.renderer.Page(w, http.StatusOK, "contact", PageData{Title: "Contact", Active: "contact"})
}

// handleResumePage renders the resume overview page.
func (s *Server) handleResumePage(w http.ResponseWriter, _ *http.Request) {
	s.renderer.Page(w, http.StatusOK, "resume", PageData{Title: "Resume", Active: "resume"})
}

// handleThemeToggle confirms a client-side theme switch. The theme itself
// lives in the browser; this endpoint just echoes the chosen value back.
func (s *Server) handleThemeToggle(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid form data")
		return
	}
	theme := r.PostFormValue("theme")
	if theme == "" {
		s.errorResponse(w, http.StatusBadRequest, "theme is required")
		return
	}
	s.renderer.Partial(w, http.StatusOK, "theme_toggle", PartialData{CurrentTheme: theme})
}
