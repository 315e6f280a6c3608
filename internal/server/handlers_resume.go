package server

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
)

// handleResumeDownload generates and serves the localized resume PDF.
func (s *Server) handleResumeDownload(w http.ResponseWriter, r *http.Request) {
	language := r.URL.Query().Get("language")
	if language == "" {
		language = "en"
	}

	pdf, filename, err := s.pdf.Generate(r.Context(), language)
	if err != nil {
		log.Printf("[resume] PDF generation failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Error generating PDF: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(pdf)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}
