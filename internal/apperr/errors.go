package apperr

import (
	"errors"
	"fmt"
)

// ErrCode is a typed error code enum for consistent error identification.
type ErrCode string

const (
	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation ErrCode = "VALIDATION_ERROR"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound ErrCode = "NOT_FOUND"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	case ErrValidation:
		return "Validation failed. Please check your input."
	case ErrNotFound:
		return "Resource not found."
	default:
		return "An unexpected error occurred."
	}
}

// Error carries an error code together with the specific failure message.
type Error struct {
	Code    ErrCode
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return GetMessage(e.Code)
	}
	return e.Message
}

// Is reports whether target is an *Error with the same code, so
// errors.Is(err, apperr.ErrValidationKind) matches any validation failure.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// Kind sentinels for errors.Is.
var (
	ErrValidationKind = &Error{Code: ErrValidation}
	ErrNotFoundKind   = &Error{Code: ErrNotFound}
)

// Validation builds a validation error with a formatted message.
func Validation(format string, args ...any) *Error {
	return &Error{Code: ErrValidation, Message: fmt.Sprintf(format, args...)}
}

// NotFound builds a lookup error with a formatted message.
func NotFound(format string, args ...any) *Error {
	return &Error{Code: ErrNotFound, Message: fmt.Sprintf(format, args...)}
}

// CodeOf extracts the ErrCode from err, or "" if err is not an *Error.
func CodeOf(err error) ErrCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
