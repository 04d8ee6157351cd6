package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Vovarama1992/jannu-assistant/internal/auth"
)

type fakeAuthenticator map[string]*auth.User

func (f fakeAuthenticator) Authenticate(_ context.Context, token string) (*auth.User, error) {
	if u, ok := f[token]; ok {
		return u, nil
	}
	return nil, auth.ErrInvalidToken
}

var testUsers = fakeAuthenticator{
	"admin-token":    {ID: "a-1", Role: auth.RoleAdmin},
	"customer-token": {ID: "c-1", Role: auth.RoleCustomer},
}

// whoami echoes the user id found in the request context.
func whoami() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := "guest"
		if u, ok := auth.UserFrom(r.Context()); ok {
			id = u.ID
		}
		w.Write([]byte(id))
	})
}

func authRequest(header string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	return req
}

func TestProtect(t *testing.T) {
	var buf bytes.Buffer
	h := Protect(testUsers, testLogger(&buf))(whoami())

	tests := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{"missing", "", http.StatusUnauthorized, "no token provided"},
		{"not bearer", "Basic abc", http.StatusUnauthorized, "no token provided"},
		{"unknown", "Bearer forged", http.StatusUnauthorized, "token invalid"},
		{"valid", "Bearer customer-token", http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.ServeHTTP(w, authRequest(tt.header))

			if w.Code != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, w.Code)
			}
			if tt.body == "" {
				if w.Body.String() != "c-1" {
					t.Fatalf("expected user in context, got %q", w.Body.String())
				}
				return
			}
			var body map[string]string
			_ = json.NewDecoder(w.Body).Decode(&body)
			if body["error"] != tt.body {
				t.Fatalf("expected %q, got %v", tt.body, body)
			}
		})
	}
}

func TestIdentifyLetsGuestsThrough(t *testing.T) {
	h := Identify(testUsers)(whoami())

	tests := []struct {
		header string
		want   string
	}{
		{"", "guest"},
		{"Bearer forged", "guest"},
		{"Bearer admin-token", "a-1"},
	}
	for _, tt := range tests {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, authRequest(tt.header))
		if w.Code != http.StatusOK || w.Body.String() != tt.want {
			t.Fatalf("header %q: expected %q, got %d %q", tt.header, tt.want, w.Code, w.Body.String())
		}
	}
}

func TestAdminOnly(t *testing.T) {
	var buf bytes.Buffer
	h := Protect(testUsers, testLogger(&buf))(AdminOnly(whoami()))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, authRequest("Bearer customer-token"))
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for customer, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	h.ServeHTTP(w, authRequest("Bearer admin-token"))
	if w.Code != http.StatusOK || w.Body.String() != "a-1" {
		t.Fatalf("expected admin through, got %d %q", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	AdminOnly(whoami()).ServeHTTP(w, authRequest(""))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without Protect, got %d", w.Code)
	}
}
