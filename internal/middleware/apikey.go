package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/Vovarama1992/jannu-assistant/internal/httpx"
)

const APIKeyHeader = "X-API-Key"

type apiKeyError struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// APIKey rejects requests whose X-API-Key header is missing (401) or not in keys (403).
func APIKey(keys []string, log logrus.FieldLogger) func(http.Handler) http.Handler {
	allowed := make([][]byte, 0, len(keys))
	for _, k := range keys {
		allowed = append(allowed, []byte(k))
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get(APIKeyHeader)
			if key == "" {
				httpx.WriteJSON(w, http.StatusUnauthorized, apiKeyError{
					Message: "API key required. Please provide a valid API key to access this service.",
					Error:   "MISSING_API_KEY",
				})
				return
			}

			if !known(allowed, []byte(key)) {
				log.WithFields(logrus.Fields{"path": r.URL.Path, "key": maskKey(key)}).Warn("rejected api key")
				httpx.WriteJSON(w, http.StatusForbidden, apiKeyError{
					Message: "Invalid API key. Access denied.",
					Error:   "INVALID_API_KEY",
				})
				return
			}

			log.WithFields(logrus.Fields{
				"key":    maskKey(key),
				"path":   r.URL.Path,
				"method": r.Method,
			}).Debug("api access")
			next.ServeHTTP(w, r)
		})
	}
}

func known(allowed [][]byte, key []byte) bool {
	for _, k := range allowed {
		if subtle.ConstantTimeCompare(k, key) == 1 {
			return true
		}
	}
	return false
}

func maskKey(key string) string {
	if len(key) <= 10 {
		return key[:len(key)/2] + "..."
	}
	return key[:10] + "..."
}
