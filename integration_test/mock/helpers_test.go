package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	client "github.com/historial/historial-client"
)

// loginHandler answers /api/auth/login the way the auth service does for a
// known admin credential pair. Other paths fall through to next.
func loginHandler(t *testing.T, next http.Handler) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/auth/login" && r.Method == http.MethodPost {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"error": false,
				"token": "tok-123",
				"tipo": "admin",
				"numFicha": "1001",
				"nombre": "Ana",
				"apellido": "Pérez"
			}`))
			return
		}
		if next != nil {
			next.ServeHTTP(w, r)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})
}

// newLoggedInClient builds a file-backed client against hs and performs a
// successful admin login.
func newLoggedInClient(t *testing.T, hs *httptest.Server) (*client.Client, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.json")
	c, err := client.New(hs.URL, client.WithSessionFile(path))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })

	if _, err := c.Login(context.Background(), "1001", "12345678"); err != nil {
		t.Fatalf("login: %v", err)
	}
	return c, path
}

func readSessionFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return ""
		}
		t.Fatalf("read session file: %v", err)
	}
	return string(data)
}
