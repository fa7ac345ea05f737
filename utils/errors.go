package utils

import (
	"errors"
	"net/http"
)

// ErrorCode is a stable machine-readable identifier surfaced to API clients.
type ErrorCode string

const (
	CodeValidation        ErrorCode = "validation_error"
	CodeUnavailableSlot   ErrorCode = "unavailable_slot"
	CodeNotFound          ErrorCode = "not_found"
	CodeInvalidTransition ErrorCode = "invalid_transition"
	CodeAuthorization     ErrorCode = "authorization_error"
	CodeConflict          ErrorCode = "conflict"
	CodeInternal          ErrorCode = "internal_error"
)

// Error is a domain error carrying a stable code alongside the message.
type Error struct {
	Code    ErrorCode
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func NewValidationError(message string) *Error {
	return &Error{Code: CodeValidation, Message: message}
}

func NewUnavailableSlotError(message string) *Error {
	return &Error{Code: CodeUnavailableSlot, Message: message}
}

func NewNotFoundError(message string) *Error {
	return &Error{Code: CodeNotFound, Message: message}
}

func NewInvalidTransitionError(message string) *Error {
	return &Error{Code: CodeInvalidTransition, Message: message}
}

func NewAuthorizationError(message string) *Error {
	return &Error{Code: CodeAuthorization, Message: message}
}

func NewConflictError(message string) *Error {
	return &Error{Code: CodeConflict, Message: message}
}

// ErrorCodeOf extracts the stable code from err, falling back to internal_error.
func ErrorCodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

// HTTPStatus maps a domain error to the HTTP status used in responses.
func HTTPStatus(err error) int {
	switch ErrorCodeOf(err) {
	case CodeValidation:
		return http.StatusUnprocessableEntity
	case CodeUnavailableSlot, CodeInvalidTransition, CodeConflict:
		return http.StatusConflict
	case CodeNotFound:
		return http.StatusNotFound
	case CodeAuthorization:
		return http.StatusForbidden
	}
	return http.StatusInternalServerError
}
