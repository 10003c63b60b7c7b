package client

import (
	"context"

	"github.com/historial/historial-client/internal/api"
	interrors "github.com/historial/historial-client/internal/errors"
	"github.com/historial/historial-client/internal/types"
	"github.com/historial/historial-client/session"
)

// Login exchanges a (ficha, cedula) credential pair for a session. Both
// inputs must be digit strings of 1-20 characters; anything else is rejected
// client-side without a network call.
//
// On success the session is persisted atomically and the guard moves to
// Granted. On any failure nothing is persisted: the durable slot holds
// exactly what it held before the call.
func (c *Client) Login(ctx context.Context, numFicha, cedula string) (*session.Session, error) {
	if err := types.ValidateCredential("numFicha", numFicha); err != nil {
		loginAttemptsTotal.WithLabelValues("invalid").Inc()
		return nil, err
	}
	if err := types.ValidateCredential("cedula", cedula); err != nil {
		loginAttemptsTotal.WithLabelValues("invalid").Inc()
		return nil, err
	}

	resp, err := api.Login(ctx, c.http, c.baseURL, types.LoginRequest{NumFicha: numFicha, Cedula: cedula})
	if err != nil {
		if IsInvalidCredentials(err) {
			loginAttemptsTotal.WithLabelValues("rejected").Inc()
		} else {
			loginAttemptsTotal.WithLabelValues("error").Inc()
		}
		return nil, err
	}
	if resp.Error {
		loginAttemptsTotal.WithLabelValues("rejected").Inc()
		return nil, interrors.NewInvalidCredentials("login", resp.Message)
	}

	role, _ := types.ParseRole(resp.Tipo)
	s := session.Session{
		NumFicha:   resp.NumFicha,
		GivenName:  resp.GivenName,
		FamilyName: resp.FamilyName,
		Role:       role,
		Token:      resp.Token,
	}
	if err := c.store.Save(s); err != nil {
		// Save is all-or-nothing, so whatever session the slot held
		// before this call is still there.
		loginAttemptsTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	c.guard.Resolve(&s)
	loginAttemptsTotal.WithLabelValues("success").Inc()
	return &s, nil
}

// Logout clears the durable session and denies the guard. Purely local:
// no network effect, always succeeds.
func (c *Client) Logout() {
	_ = c.store.Clear()
	c.guard.Deny()
}

// RestoreSession resolves the guard from the durable slot: Granted when a
// well-formed session is present, Denied otherwise. No network calls; the
// token is trusted until the backend says otherwise.
func (c *Client) RestoreSession() *session.Session {
	s := c.store.Restore()
	c.guard.Resolve(s)
	return s
}

// Register creates a new account via the auth service's public register
// endpoint. For admin-gated account management use CreateUser.
func (c *Client) Register(ctx context.Context, form UserForm) (*UserAccount, error) {
	if err := types.ValidateUserForm(form); err != nil {
		return nil, err
	}
	if form.Cedula == "" {
		return nil, interrors.Validationf("cedula is required")
	}
	return api.Register(ctx, c.http, c.baseURL, form)
}

// ValidateToken asks the auth service whether a token is still accepted.
func (c *Client) ValidateToken(ctx context.Context, token string) (bool, error) {
	return api.ValidateToken(ctx, c.http, c.baseURL, token)
}
