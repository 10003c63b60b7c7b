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

// Login exchanges a credential pair for a token. The service reports
// rejections two ways: a 401 status, or a 200 carrying {error:true,message};
// the first is normalized here, the second is left to the caller, which has
// the decoded response.
func Login(ctx context.Context, httpClient *http.Client, baseURL string, req types.LoginRequest) (*types.LoginResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/api/auth/login", baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, errors.NewTransport("login", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusUnauthorized {
		var lr types.LoginResponse
		_ = json.NewDecoder(resp.Body).Decode(&lr)
		return nil, errors.NewInvalidCredentials("login", lr.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, statusError("login", resp)
	}

	var lr types.LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&lr); err != nil {
		return nil, err
	}
	return &lr, nil
}

// Register creates a new account via /api/auth/register.
func Register(ctx context.Context, httpClient *http.Client, baseURL string, form types.UserForm) (*types.UserAccount, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	body, err := json.Marshal(form)
	if err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/api/auth/register", baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, errors.NewTransport("register", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, statusError("register", resp)
	}

	var account types.UserAccount
	if err := json.NewDecoder(resp.Body).Decode(&account); err != nil {
		return nil, err
	}
	return &account, nil
}

// ValidateToken asks the auth service whether a token is still accepted.
func ValidateToken(ctx context.Context, httpClient *http.Client, baseURL, token string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	body, err := json.Marshal(types.ValidateTokenRequest{Token: token})
	if err != nil {
		return false, err
	}
	url := fmt.Sprintf("%s/api/auth/validate", baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return false, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return false, errors.NewTransport("validate token", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return false, statusError("validate token", resp)
	}

	var vr types.ValidateTokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&vr); err != nil {
		return false, err
	}
	return vr.Valid, nil
}
