package client

import (
	"net/http"

	"github.com/google/uuid"
)

// bearerTransport wraps an http.RoundTripper to add the Authorization header
// from the current session and to signal the guard when any endpoint answers
// 401. Every outgoing request passes through here, so a 401 is never missed
// regardless of which call site triggered it.
type bearerTransport struct {
	base           http.RoundTripper
	token          func() string
	onUnauthorized func()
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original.
	cloned := req.Clone(req.Context())
	if tok := t.token(); tok != "" {
		cloned.Header.Set("Authorization", "Bearer "+tok)
	}
	if cloned.Header.Get("X-Request-Id") == "" {
		cloned.Header.Set("X-Request-Id", uuid.NewString())
	}
	requestsTotal.WithLabelValues(req.Method).Inc()

	resp, err := t.base.RoundTrip(cloned)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusUnauthorized && t.onUnauthorized != nil {
		t.onUnauthorized()
	}
	return resp, nil
}
