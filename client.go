// Package client is the Go SDK for the historial maintenance-logbook
// backend. It owns the session/authorization state machine, the activity
// record repository and the aggregation layer; the backend services stay
// external collaborators reached over HTTP.
package client

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/historial/historial-client/guard"
	"github.com/historial/historial-client/session"
)

// Client is the process-wide entry point. It wires the session store, the
// access guard and the HTTP transport together: one logical writer for the
// durable session slot, one guard observing every backend response.
type Client struct {
	baseURL string
	http    *http.Client
	store   session.Store
	guard   *guard.Guard
}

// New constructs a Client for the backend at baseURL. Without options the
// client uses an in-memory session store and a 30 second HTTP timeout.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("baseURL cannot be empty")
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		guard:   guard.New(),
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if c.store == nil {
		c.store = session.NewMemoryStore()
	}

	c.wrapTransport()
	return c, nil
}

// wrapTransport installs the bearer-token wrapper on top of whatever
// transport the options left in place (debug logging sits underneath, so
// dumps show the outgoing Authorization header).
func (c *Client) wrapTransport() {
	base := c.http.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	c.http.Transport = &bearerTransport{
		base:           base,
		token:          c.currentToken,
		onUnauthorized: c.handleUnauthorized,
	}
}

// currentToken is the transport's token source: the persisted session, or
// nothing before login.
func (c *Client) currentToken() string {
	if s := c.store.Restore(); s != nil {
		return s.Token
	}
	return ""
}

// handleUnauthorized reacts to a 401 from any endpoint: the durable session
// is cleared and the guard drops to Denied within the same call. Navigation
// stays the caller's concern.
func (c *Client) handleUnauthorized() {
	_ = c.store.Clear()
	c.guard.Deny()
	unauthorizedTotal.Inc()
	log.Debug().Msg("backend reported 401, session cleared")
}

// Guard returns the access guard protected views consult.
func (c *Client) Guard() *guard.Guard { return c.guard }

// Session returns the current session, or nil when not authenticated.
func (c *Client) Session() *session.Session { return c.store.Restore() }

// Close releases idle connections. Safe to call multiple times.
func (c *Client) Close() error {
	c.http.CloseIdleConnections()
	return nil
}
