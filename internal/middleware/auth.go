package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/Vovarama1992/jannu-assistant/internal/auth"
	"github.com/Vovarama1992/jannu-assistant/internal/httpx"
)

// Authenticator resolves a bearer token to a user.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*auth.User, error)
}

func bearer(r *http.Request) string {
	token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok {
		return ""
	}
	return strings.TrimSpace(token)
}

// Protect requires a valid bearer token and puts the user in the request context.
func Protect(authn Authenticator, log logrus.FieldLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearer(r)
			if token == "" {
				httpx.Error(w, http.StatusUnauthorized, "no token provided")
				return
			}
			u, err := authn.Authenticate(r.Context(), token)
			if err != nil {
				log.WithError(err).WithField("path", r.URL.Path).Warn("rejected token")
				httpx.Error(w, http.StatusUnauthorized, "token invalid")
				return
			}
			next.ServeHTTP(w, r.WithContext(auth.WithUser(r.Context(), u)))
		})
	}
}

// Identify attaches the user when a valid token is sent and lets guests through.
func Identify(authn Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token := bearer(r); token != "" {
				if u, err := authn.Authenticate(r.Context(), token); err == nil {
					r = r.WithContext(auth.WithUser(r.Context(), u))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// AdminOnly must run after Protect.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, ok := auth.UserFrom(r.Context())
		if !ok {
			httpx.Error(w, http.StatusUnauthorized, "not authenticated")
			return
		}
		if u.Role != auth.RoleAdmin {
			httpx.Error(w, http.StatusForbidden, "admins only")
			return
		}
		next.ServeHTTP(w, r)
	})
}
