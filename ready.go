package client

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
)

// WaitReady blocks until the backend answers HTTP at all, retrying transport
// failures with exponential backoff up to maxWait. Meant for development and
// integration setups where the services come up alongside the client.
//
// Any HTTP response, error statuses included, counts as ready; only
// network-level failures retry. Core SDK operations never retry on their
// own: WaitReady is the single, explicitly invoked exception.
func (c *Client) WaitReady(ctx context.Context, maxWait time.Duration) error {
	probe := func() error {
		// The validate endpoint is unauthenticated and side-effect free;
		// an empty token simply comes back invalid.
		req, err := http.NewRequestWithContext(ctx, http.MethodPost,
			fmt.Sprintf("%s/api/auth/validate", c.baseURL),
			bytes.NewBufferString(`{"token":""}`))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.http.Do(req)
		if err != nil {
			return err
		}
		_ = resp.Body.Close()
		return nil
	}

	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = 250 * time.Millisecond
	exp.MaxInterval = 5 * time.Second
	exp.MaxElapsedTime = maxWait
	return backoff.Retry(probe, backoff.WithContext(exp, ctx))
}
