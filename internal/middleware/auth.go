package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/passcheck/passcheck-go/internal/crypto"
)

type contextKey string

const clientIDKey contextKey = "clientID"

// BearerAuth returns middleware that validates a Bearer token from the
// Authorization header and stores the client ID in the request context.
func BearerAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeJSONError(w, http.StatusUnauthorized, "missing authorization header")
				return
			}

			token, found := strings.CutPrefix(authHeader, "Bearer ")
			if !found || token == "" {
				writeJSONError(w, http.StatusUnauthorized, "invalid authorization format")
				return
			}

			claims, err := crypto.ValidateToken(token, secret)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), clientIDKey, claims.ClientID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClientIDFromContext extracts the authenticated client ID from the request
// context.
func ClientIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(clientIDKey).(string)
	return id, ok
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
