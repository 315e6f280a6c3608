package server

import (
	"log"
	"net/http"

	"github.com/microcosm-cc/bluemonday"

	"github.com/leonardomurakami/portfolio/internal/types"
)

// messagePolicy strips all markup from submitted messages; the contact log
// and relay emails are plain text.
var messagePolicy = bluemonday.StrictPolicy()

// handleContactSubmit runs the contact pipeline: validate, persist, relay.
// The submission succeeds once it is durably stored; a failing mail relay is
// logged but does not surface to the visitor.
func (s *Server) handleContactSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.renderer.Partial(w, http.StatusBadRequest, "contact_error", PartialData{
			Error: "Could not read the form data. Please try again.",
		})
		return
	}

	sub := types.NewContactSubmission(
		r.PostFormValue("name"),
		r.PostFormValue("email"),
		messagePolicy.Sanitize(r.PostFormValue("message")),
	)

	if err := sub.Validate(); err != nil {
		log.Printf("[contact] rejected submission: %v", err)
		s.renderer.Partial(w, http.StatusBadRequest, "contact_error", PartialData{
			Error: "Please fill in your name, a valid email address, and a message.",
		})
		return
	}

	if err := s.contacts.AppendContact(sub); err != nil {
		log.Printf("[contact] failed to store submission: %v", err)
		s.renderer.Partial(w, http.StatusInternalServerError, "contact_error", PartialData{
			Error: "Could not save your message. Please try again later.",
		})
		return
	}

	if s.database != nil {
		if err := s.database.SaveContact(r.Context(), sub); err != nil {
			// The flat-file log already has the submission.
			log.Printf("[contact] database mirror failed: %v", err)
		}
	}

	if err := s.mailer.SendContactEmail(sub); err != nil {
		log.Printf("[contact] mail relay failed: %v", err)
	}

	s.renderer.Partial(w, http.StatusOK, "contact_success", PartialData{})
}
