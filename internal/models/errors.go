package models

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// ErrorKind classifies an AppError into one of the outcomes every
// service operation is total over.
type ErrorKind string

const (
	// KindInvalidInput indicates malformed or missing input fields.
	KindInvalidInput ErrorKind = "invalid_input"
	// KindUnauthorized indicates a missing, invalid or expired identity proof.
	KindUnauthorized ErrorKind = "unauthorized"
	// KindForbidden indicates an authenticated actor lacking permission for the target.
	KindForbidden ErrorKind = "forbidden"
	// KindNotFound indicates an absent entity, or a conversation the
	// caller is not a participant of (deliberately indistinguishable).
	KindNotFound ErrorKind = "not_found"
	// KindConflict indicates a uniqueness violation.
	KindConflict ErrorKind = "conflict"
	// KindUnavailable indicates an unexpected lower-layer failure.
	KindUnavailable ErrorKind = "unavailable"
)

// ErrorResponse represents a standardized API error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// AppError is the application error type carried across service boundaries.
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewInvalidInputError returns an AppError for malformed or missing input.
func NewInvalidInputError(message string) *AppError {
	return &AppError{Kind: KindInvalidInput, Message: message}
}

// NewUnauthorizedError returns an AppError for a failed identity check.
func NewUnauthorizedError(message string) *AppError {
	return &AppError{Kind: KindUnauthorized, Message: message}
}

// NewForbiddenError returns an AppError for an authenticated but
// unpermitted action.
func NewForbiddenError(message string) *AppError {
	return &AppError{Kind: KindForbidden, Message: message}
}

// NewNotFoundError returns an AppError for an absent entity.
func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s not found", resource),
		Err:     fmt.Errorf("%s with ID %v not found", resource, id),
	}
}

// NewConflictError returns an AppError for a uniqueness violation.
func NewConflictError(message string) *AppError {
	return &AppError{Kind: KindConflict, Message: message}
}

// NewUnavailableError wraps an unexpected lower-layer failure.
func NewUnavailableError(err error) *AppError {
	return &AppError{Kind: KindUnavailable, Message: "Service unavailable", Err: err}
}

// KindOf returns the error kind, or KindUnavailable for unclassified errors.
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnavailable
}

// IsKind reports whether err is an AppError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool { return IsKind(err, KindNotFound) }

// IsConflict reports whether err is a conflict error.
func IsConflict(err error) bool { return IsKind(err, KindConflict) }

// HTTPStatus maps an error to its HTTP status code.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindInvalidInput:
		return fiber.StatusBadRequest
	case KindUnauthorized:
		return fiber.StatusUnauthorized
	case KindForbidden:
		return fiber.StatusForbidden
	case KindNotFound:
		return fiber.StatusNotFound
	case KindConflict:
		return fiber.StatusConflict
	default:
		return fiber.StatusServiceUnavailable
	}
}

// RespondWithError writes a standardized error response with the status
// derived from the error kind.
func RespondWithError(c *fiber.Ctx, err error) error {
	response := ErrorResponse{Error: err.Error()}

	var appErr *AppError
	if errors.As(err, &appErr) {
		response.Error = appErr.Message
		response.Code = string(appErr.Kind)
		if appErr.Err != nil && appErr.Kind != KindUnavailable {
			response.Details = appErr.Err.Error()
		}
	}

	return c.Status(HTTPStatus(err)).JSON(response)
}
