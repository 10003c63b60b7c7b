package client

import (
	"errors"

	interrors "github.com/historial/historial-client/internal/errors"
)

// ErrSelfDelete is returned when the account-management flow is asked to
// delete the account behind the active session.
var ErrSelfDelete = errors.New("cannot delete the account of the active session")

// ErrAdminRequired is returned when an admin-gated operation is invoked
// without a Granted(ADMIN) guard state.
var ErrAdminRequired = errors.New("operation requires an authenticated admin session")

// IsValidation reports whether err is a client-detected missing/malformed
// field; nothing was sent to the backend.
func IsValidation(err error) bool { return interrors.Is(err, interrors.Validation) }

// IsInvalidCredentials reports whether err is a login rejection reported by
// the auth service.
func IsInvalidCredentials(err error) bool { return interrors.Is(err, interrors.InvalidCredentials) }

// IsUnauthorized reports whether err came from a backend 401 (expired or
// invalid token). The session has already been cleared when this is true.
func IsUnauthorized(err error) bool { return interrors.Is(err, interrors.Unauthorized) }

// IsNotFound reports whether err is a read or mutation against a missing
// resource.
func IsNotFound(err error) bool { return interrors.Is(err, interrors.NotFound) }

// IsTransport reports whether err means the backend was unreachable or
// unable to answer. Retried only by explicit user action.
func IsTransport(err error) bool { return interrors.Is(err, interrors.Transport) }

// ErrorMessage extracts the human-readable reason from any SDK error, for
// display near the originating form.
func ErrorMessage(err error) string { return interrors.MessageOf(err) }
