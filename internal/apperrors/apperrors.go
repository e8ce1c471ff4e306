// Package apperrors provides coded domain errors shared across services
// and handlers.
package apperrors

import (
	"errors"
	"net/http"
)

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unexpected internal failure.
	CodeUnknown Code = "UNKNOWN"

	// CodeValidation represents missing or malformed input.
	CodeValidation Code = "VALIDATION"

	// CodeConflict represents a uniqueness violation.
	CodeConflict Code = "CONFLICT"

	// CodeUnauthorized represents a missing, invalid or expired credential.
	CodeUnauthorized Code = "UNAUTHORIZED"

	// CodeForbidden represents an authenticated but unauthorized actor.
	CodeForbidden Code = "FORBIDDEN"

	// CodeNotFound represents an absent referenced entity.
	CodeNotFound Code = "NOT_FOUND"
)

// Error is the domain error type with a code and optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error by code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates a domain error with a code and message.
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a domain error that wraps an underlying cause.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// IsCode reports whether err carries the given code anywhere in its chain.
func IsCode(err error, code Code) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}

// HTTPStatus maps the error code to an HTTP status code.
func (e *Error) HTTPStatus() int {
	switch e.Code {
	case CodeValidation:
		return http.StatusBadRequest
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
