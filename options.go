package client

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file avoids cluttering
// client.go and makes it easy to discover all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"time"

	"github.com/historial/historial-client/session"
)

// Option configures a Client during construction in New.
//
// Options are applied before the bearer-token transport wrapper is installed,
// so transport-related options (like debug logging) end up underneath the
// token wrapper. Options must be deterministic and side-effect free.
type Option func(*Client) error

// WithHTTPTimeout sets the underlying http.Client Timeout used by the SDK.
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse safety net that bounds the total time spent on a single HTTP
// request. The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithHTTPClient replaces the underlying http.Client. The bearer-token
// wrapper is still installed on top of its transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client cannot be nil")
		}
		c.http = hc
		return nil
	}
}

// WithSessionStore injects a custom durable slot for the session. The
// default is an in-memory store that does not survive restarts.
func WithSessionStore(store session.Store) Option {
	return func(c *Client) error {
		if store == nil {
			return fmt.Errorf("session store cannot be nil")
		}
		c.store = store
		return nil
	}
}

// WithSessionFile persists the session to the given file so it survives
// process restarts.
func WithSessionFile(path string) Option {
	return func(c *Client) error {
		if path == "" {
			return fmt.Errorf("session file path cannot be empty")
		}
		c.store = session.NewFileStore(path)
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response is
// logged when enabled is true.
//
// The debug transport is installed beneath the bearer-token wrapper; logs are
// emitted before the request is forwarded to the next transport. Do not
// enable this option in production environments: dumps include headers and
// bodies, tokens among them.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			c.http.Transport = &debugTransport{base: c.http.Transport}
		}
		return nil
	}
}
