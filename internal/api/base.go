// Package api contains the raw HTTP bindings for the three backend services.
// One file per service; every function is synchronous and takes the caller's
// context. Authorization headers are added by the client's transport wrapper,
// never here.
package api

import (
	"io"
	"net/http"
	"strings"

	"github.com/historial/historial-client/internal/errors"
)

// statusError classifies an unexpected response, carrying a bounded snippet
// of the body as the message.
func statusError(op string, resp *http.Response) *errors.Error {
	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return errors.FromStatus(op, resp.StatusCode, strings.TrimSpace(string(snippet)))
}
