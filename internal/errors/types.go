// Package errors provides the error taxonomy shared by the client SDK.
// Every backend interaction resolves to one of a small set of categories so
// callers (and the access guard) can react deterministically.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Category classifies a failed operation.
type Category int

const (
	// Validation means a required field was missing or malformed. Detected
	// client-side; no request was sent.
	Validation Category = iota

	// InvalidCredentials is a login rejection reported by the auth service.
	InvalidCredentials

	// Unauthorized means the backend rejected the bearer token (expired or
	// invalid). The transport layer also signals the access guard.
	Unauthorized

	// NotFound is a read/update/delete against a missing resource.
	NotFound

	// Rejected is any other client-error response from the backend
	// (typically a 400 from server-side validation).
	Rejected

	// Transport covers network failures and 5xx responses: the service is
	// unreachable or unable to answer. Never retried automatically.
	Transport
)

// String returns a human-readable representation of the category.
func (c Category) String() string {
	switch c {
	case Validation:
		return "Validation"
	case InvalidCredentials:
		return "InvalidCredentials"
	case Unauthorized:
		return "Unauthorized"
	case NotFound:
		return "NotFound"
	case Rejected:
		return "Rejected"
	case Transport:
		return "Transport"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

// Error carries the category plus enough context to report the failure.
type Error struct {
	Category   Category
	Op         string // operation that failed, e.g. "login", "list activities"
	StatusCode int    // HTTP status (0 when no response was received)
	Message    string // human-readable reason, backend-supplied where available
	Underlying error  // original error, if any
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if msg == "" && e.Underlying != nil {
		msg = e.Underlying.Error()
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: [%s] HTTP %d: %s", e.Op, e.Category, e.StatusCode, msg)
	}
	return fmt.Sprintf("%s: [%s] %s", e.Op, e.Category, msg)
}

// Unwrap returns the underlying error for error chain compatibility.
func (e *Error) Unwrap() error { return e.Underlying }

// Validationf builds a Validation error from a format string.
func Validationf(format string, args ...any) *Error {
	return &Error{Category: Validation, Op: "validate", Message: fmt.Sprintf(format, args...)}
}

// Is reports whether err (or anything it wraps) is an Error of category cat.
func Is(err error, cat Category) bool {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Category == cat
	}
	return false
}

// MessageOf extracts the human-readable message from a classified error,
// falling back to err.Error() for anything else.
func MessageOf(err error) string {
	var e *Error
	if stderrors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	if err != nil {
		return err.Error()
	}
	return ""
}
