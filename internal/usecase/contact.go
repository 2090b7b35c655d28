package usecase

import (
	"context"

	"md-terceirizacao-api/internal/domain"
	"md-terceirizacao-api/pkg/apperror"
	"md-terceirizacao-api/pkg/email"
	"md-terceirizacao-api/pkg/logger"
	"md-terceirizacao-api/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type contactUsecase struct {
	sender   email.Sender
	composer *email.Composer
	validate *validator.Validate
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(sender email.Sender, composer *email.Composer, validate *validator.Validate) domain.ContactUsecase {
	return &contactUsecase{
		sender:   sender,
		composer: composer,
		validate: validate,
	}
}

// SendContactMessage validates the submission, composes the notification and sends it once.
func (uc *contactUsecase) SendContactMessage(ctx context.Context, sub *domain.ContactSubmission) error {
	if err := uc.validate.Struct(sub); err != nil {
		logger.Log.Debug("Contact submission rejected", "missing", validation.FormatValidationErrors(err))
		return apperror.Validation(domain.MsgContactIncomplete, validation.MissingFields(err))
	}

	msg, err := uc.composer.ComposeContact(sub)
	if err != nil {
		return apperror.Internal(domain.MsgSendFailed, err)
	}

	if err := uc.sender.Send(ctx, msg); err != nil {
		return apperror.Delivery(domain.MsgSendFailed, err)
	}

	return nil
}
