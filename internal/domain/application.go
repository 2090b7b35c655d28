package domain

import "context"

// UploadedFile is a résumé staged on local disk for the lifetime of a request.
type UploadedFile struct {
	OriginalName string
	StoredPath   string
	Size         int64
}

// ApplicationSubmission represents a "trabalhe conosco" multipart post.
// Resume is filled by upload staging, not by form binding.
type ApplicationSubmission struct {
	Name   string        `json:"nome" form:"nome" validate:"required"`
	Email  string        `json:"email" form:"email" validate:"required"`
	Phone  string        `json:"telefone" form:"telefone" validate:"required"`
	Resume *UploadedFile `json:"curriculo" form:"-" validate:"required"`
}

// ApplicationUsecase defines the interface for job application operations
type ApplicationUsecase interface {
	// SubmitApplication validates the submission and relays it with the résumé attached
	SubmitApplication(ctx context.Context, sub *ApplicationSubmission) error
}
