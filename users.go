package client

import (
	"context"
	"strings"

	"github.com/historial/historial-client/guard"
	"github.com/historial/historial-client/internal/api"
	interrors "github.com/historial/historial-client/internal/errors"
	"github.com/historial/historial-client/internal/types"
)

// ListUsers retrieves every account. Requires a Granted(ADMIN) guard; the
// backend enforces the same rule independently.
func (c *Client) ListUsers(ctx context.Context) ([]UserAccount, error) {
	if !c.guard.Allows(guard.ActionManageUsers) {
		return nil, ErrAdminRequired
	}
	return api.ListUsers(ctx, c.http, c.baseURL)
}

// GetUser retrieves a single account by ID. Admin-gated.
func (c *Client) GetUser(ctx context.Context, id int64) (*UserAccount, error) {
	if !c.guard.Allows(guard.ActionManageUsers) {
		return nil, ErrAdminRequired
	}
	return api.GetUser(ctx, c.http, c.baseURL, id)
}

// CreateUser registers a new account from the admin user-management flow.
// Cedula is mandatory on creation.
func (c *Client) CreateUser(ctx context.Context, form UserForm) (*UserAccount, error) {
	if !c.guard.Allows(guard.ActionManageUsers) {
		return nil, ErrAdminRequired
	}
	if err := types.ValidateUserForm(form); err != nil {
		return nil, err
	}
	if form.Cedula == "" {
		return nil, interrors.Validationf("cedula is required")
	}
	return api.Register(ctx, c.http, c.baseURL, form)
}

// UpdateUser edits an account. An empty cedula leaves the stored secret
// untouched.
func (c *Client) UpdateUser(ctx context.Context, id int64, form UserForm) (*UserAccount, error) {
	if !c.guard.Allows(guard.ActionManageUsers) {
		return nil, ErrAdminRequired
	}
	if err := types.ValidateUserForm(form); err != nil {
		return nil, err
	}
	return api.UpdateUser(ctx, c.http, c.baseURL, id, form)
}

// DeleteUser removes an account. The account of the active session can never
// be deleted (ErrSelfDelete, checked before any network call), and an
// account without an ID is a no-op.
func (c *Client) DeleteUser(ctx context.Context, account UserAccount) error {
	if !c.guard.Allows(guard.ActionManageUsers) {
		return ErrAdminRequired
	}
	if s := c.store.Restore(); s != nil && s.NumFicha == account.NumFicha {
		return ErrSelfDelete
	}
	if account.ID == nil {
		return nil
	}
	return api.DeleteUser(ctx, c.http, c.baseURL, *account.ID)
}

// FilterUsers narrows an already-fetched account list the way the
// user-management view does: exact role match plus a substring search over
// names, ficha and cedula. Pure and order-preserving.
func FilterUsers(accounts []UserAccount, f UserFilter) []UserAccount {
	out := make([]UserAccount, 0, len(accounts))
	search := strings.ToLower(f.Search)
	for _, a := range accounts {
		if f.Role != "" && a.Role != f.Role {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(a.GivenName), search) &&
			!strings.Contains(strings.ToLower(a.FamilyName), search) &&
			!strings.Contains(a.NumFicha, f.Search) &&
			!strings.Contains(a.Cedula, f.Search) {
			continue
		}
		out = append(out, a)
	}
	return out
}
