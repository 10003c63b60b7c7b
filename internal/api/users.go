package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/historial/historial-client/internal/errors"
	"github.com/historial/historial-client/internal/types"
)

// ListUsers retrieves every account. Admin only; the backend enforces it.
func ListUsers(ctx context.Context, httpClient *http.Client, baseURL string) ([]types.UserAccount, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/api/auth/users", baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, errors.NewTransport("list users", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError("list users", resp)
	}

	var accounts []types.UserAccount
	if err := json.NewDecoder(resp.Body).Decode(&accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// GetUser retrieves a single account by ID.
func GetUser(ctx context.Context, httpClient *http.Client, baseURL string, id int64) (*types.UserAccount, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/api/auth/users/%d", baseURL, id)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, errors.NewTransport("get user", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError("get user", resp)
	}

	var account types.UserAccount
	if err := json.NewDecoder(resp.Body).Decode(&account); err != nil {
		return nil, err
	}
	return &account, nil
}

// UpdateUser replaces an account's editable fields.
func UpdateUser(ctx context.Context, httpClient *http.Client, baseURL string, id int64, form types.UserForm) (*types.UserAccount, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	body, err := json.Marshal(form)
	if err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/api/auth/users/%d", baseURL, id)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, errors.NewTransport("update user", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError("update user", resp)
	}

	var account types.UserAccount
	if err := json.NewDecoder(resp.Body).Decode(&account); err != nil {
		return nil, err
	}
	return &account, nil
}

// DeleteUser removes an account by ID.
func DeleteUser(ctx context.Context, httpClient *http.Client, baseURL string, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	url := fmt.Sprintf("%s/api/auth/users/%d", baseURL, id)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return errors.NewTransport("delete user", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		return statusError("delete user", resp)
	}
	return nil
}
