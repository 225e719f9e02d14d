// Package apperr defines the sentinel errors shared by services and the
// HTTP layer. Services wrap them with fmt.Errorf("...: %w", ...) and
// handlers map them to status codes.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound                = errors.New("not found")
	ErrConflict                = errors.New("already exists")
	ErrValidation              = errors.New("validation failed")
	ErrUnauthorized            = errors.New("unauthorized")
	ErrForbidden               = errors.New("forbidden")
	ErrInsufficientBalance     = errors.New("insufficient balance")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)

// NotFound wraps ErrNotFound with the entity name and id.
func NotFound(entity string, id any) error {
	return fmt.Errorf("%s with id %v %w", entity, id, ErrNotFound)
}

// Validation wraps ErrValidation around the cause.
func Validation(cause error) error {
	return fmt.Errorf("%w: %v", ErrValidation, cause)
}

// Validationf wraps ErrValidation around a formatted message.
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// HTTPStatus maps err to the status code the API responds with.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrValidation),
		errors.Is(err, ErrInsufficientBalance),
		errors.Is(err, ErrInvalidStatusTransition):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
