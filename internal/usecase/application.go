package usecase

import (
	"context"
	"fmt"
	"os"

	"md-terceirizacao-api/internal/domain"
	"md-terceirizacao-api/pkg/apperror"
	"md-terceirizacao-api/pkg/email"
	"md-terceirizacao-api/pkg/logger"
	"md-terceirizacao-api/pkg/upload"
	"md-terceirizacao-api/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type applicationUsecase struct {
	sender   email.Sender
	composer *email.Composer
	validate *validator.Validate
}

// NewApplicationUsecase creates a new job application usecase
func NewApplicationUsecase(sender email.Sender, composer *email.Composer, validate *validator.Validate) domain.ApplicationUsecase {
	return &applicationUsecase{
		sender:   sender,
		composer: composer,
		validate: validate,
	}
}

// SubmitApplication validates the submission, reads the staged résumé and
// sends the notification with the résumé attached.
func (uc *applicationUsecase) SubmitApplication(ctx context.Context, sub *domain.ApplicationSubmission) error {
	if err := uc.validate.Struct(sub); err != nil {
		logger.Log.Debug("Application submission rejected", "missing", validation.FormatValidationErrors(err))
		return apperror.Validation(domain.MsgApplicationIncomplete, validation.MissingFields(err))
	}

	resume, err := os.ReadFile(sub.Resume.StoredPath)
	if err != nil {
		return apperror.Staging(domain.MsgSendFailed, fmt.Errorf("failed to read staged résumé: %w", err))
	}

	if check := upload.CheckDocument(sub.Resume.OriginalName, resume); !check.IsPDF {
		// accepted anyway; no type restriction applies
		logger.Log.Warn("Résumé is not a PDF",
			"filename", sub.Resume.OriginalName,
			"extension", check.Extension,
			"content_match", check.ContentMatch,
		)
	}

	msg, err := uc.composer.ComposeApplication(sub, resume)
	if err != nil {
		return apperror.Internal(domain.MsgSendFailed, err)
	}

	if err := uc.sender.Send(ctx, msg); err != nil {
		return apperror.Delivery(domain.MsgSendFailed, err)
	}

	return nil
}
