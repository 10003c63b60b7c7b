package errors

import "net/http"

// FromStatus maps an unexpected HTTP response to a classified error.
//
//   - 401 → Unauthorized (token expired/invalid)
//   - 404 → NotFound
//   - other 4xx → Rejected (server-side validation or policy)
//   - everything else → Transport (the service could not answer)
func FromStatus(op string, status int, body string) *Error {
	cat := Transport
	switch {
	case status == http.StatusUnauthorized:
		cat = Unauthorized
	case status == http.StatusNotFound:
		cat = NotFound
	case status >= 400 && status < 500:
		cat = Rejected
	}
	msg := http.StatusText(status)
	if body != "" {
		msg = body
	}
	return &Error{Category: cat, Op: op, StatusCode: status, Message: msg}
}

// NewTransport wraps a network-level failure (no HTTP response at all).
func NewTransport(op string, err error) *Error {
	return &Error{Category: Transport, Op: op, Message: "service unreachable", Underlying: err}
}

// NewInvalidCredentials builds the login-rejection error carrying the
// backend-supplied message.
func NewInvalidCredentials(op, message string) *Error {
	if message == "" {
		message = "invalid credentials"
	}
	return &Error{Category: InvalidCredentials, Op: op, Message: message}
}
