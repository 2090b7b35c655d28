package apperror

import (
	"errors"
	"net/http"
)

// Kind classifies a request failure.
type Kind string

const (
	KindValidation Kind = "validation"
	KindStaging    Kind = "staging"
	KindDelivery   Kind = "delivery"
	KindInternal   Kind = "internal"
)

type AppError struct {
	Code    int      `json:"code"`
	Kind    Kind     `json:"kind"`
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"`
	Err     error    `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, kind Kind, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

// Validation is a client error: required fields are missing. Nothing was sent.
func Validation(message string, fields []string) *AppError {
	e := New(http.StatusBadRequest, KindValidation, message, nil)
	e.Fields = fields
	return e
}

// Staging wraps a failure to persist an uploaded file.
func Staging(message string, err error) *AppError {
	return New(http.StatusInternalServerError, KindStaging, message, err)
}

// Delivery wraps a transport failure. The client only ever sees message.
func Delivery(message string, err error) *AppError {
	return New(http.StatusInternalServerError, KindDelivery, message, err)
}

func Internal(message string, err error) *AppError {
	return New(http.StatusInternalServerError, KindInternal, message, err)
}

// Is reports whether err is an AppError of the given kind.
func Is(err error, kind Kind) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Kind == kind
}
