package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/historial/historial-client/internal/errors"
	"github.com/historial/historial-client/internal/types"
)

func TestLogin_Success(t *testing.T) {
	t.Parallel()
	hs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/auth/login" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
			"error": false,
			"token": "tok-abc",
			"tipo": "admin",
			"numFicha": "12345",
			"nombre": "Ana",
			"apellido": "Pérez"
		}`))
	}))
	defer hs.Close()

	resp, err := Login(context.Background(), hs.Client(), hs.URL, types.LoginRequest{NumFicha: "12345", Cedula: "99999999"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.Error || resp.Token != "tok-abc" || resp.NumFicha != "12345" {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestLogin_Status401BecomesInvalidCredentials(t *testing.T) {
	t.Parallel()
	hs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":true,"message":"Bad credentials"}`))
	}))
	defer hs.Close()

	_, err := Login(context.Background(), hs.Client(), hs.URL, types.LoginRequest{NumFicha: "1", Cedula: "2"})
	if !errors.Is(err, errors.InvalidCredentials) {
		t.Fatalf("expected InvalidCredentials, got %v", err)
	}
	if errors.MessageOf(err) != "Bad credentials" {
		t.Fatalf("message = %q", errors.MessageOf(err))
	}
}

func TestLogin_TransportFailure(t *testing.T) {
	t.Parallel()
	_, err := Login(context.Background(), errClient(), "http://127.0.0.1:0", types.LoginRequest{NumFicha: "1", Cedula: "2"})
	if !errors.Is(err, errors.Transport) {
		t.Fatalf("expected Transport, got %v", err)
	}
}

func TestValidateToken(t *testing.T) {
	t.Parallel()
	hs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/validate" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`{"valid":true}`))
	}))
	defer hs.Close()

	ok, err := ValidateToken(context.Background(), hs.Client(), hs.URL, "tok")
	if err != nil || !ok {
		t.Fatalf("validate = %v, %v", ok, err)
	}
}

func TestRegister_Success(t *testing.T) {
	t.Parallel()
	hs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/auth/register" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`{"id":3,"numFicha":"777","nombre":"Luis","apellido":"Gómez","role":"USUARIO"}`))
	}))
	defer hs.Close()

	account, err := Register(context.Background(), hs.Client(), hs.URL, types.UserForm{
		NumFicha: "777", Cedula: "123", GivenName: "Luis", FamilyName: "Gómez", Role: types.RoleUser,
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if account.ID == nil || *account.ID != 3 || account.Role != types.RoleUser {
		t.Fatalf("unexpected account %+v", account)
	}
}
