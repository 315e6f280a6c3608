package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ContactSubmission represents one contact form submission.
type ContactSubmission struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name" validate:"required,max=100"`
	Email     string    `json:"email" validate:"required,email,max=100"`
	Message   string    `json:"message" validate:"required,max=5000"`
	CreatedAt time.Time `json:"created_at"`
}

var contactValidator = validator.New(validator.WithRequiredStructEnabled())

// NewContactSubmission builds a submission with a fresh ID and timestamp.
func NewContactSubmission(name, email, message string) ContactSubmission {
	return ContactSubmission{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}
}

// Validate checks the submission against the field constraints.
func (c *ContactSubmission) Validate() error {
	return contactValidator.Struct(c)
}
