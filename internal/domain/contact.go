package domain

import "context"

// ContactSubmission represents a contact form post. Accepted as JSON or urlencoded form.
type ContactSubmission struct {
	Name    string `json:"nome" form:"nome" validate:"required"`
	Email   string `json:"email" form:"email" validate:"required"`
	Message string `json:"mensagem" form:"mensagem" validate:"required"`
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SendContactMessage validates the submission and relays it as an email notification
	SendContactMessage(ctx context.Context, sub *ContactSubmission) error
}
