// Package middleware provides HTTP middleware for token authentication.
package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"spendtrack/internal/domain"
)

// ctxKey is unexported so other packages cannot collide with the user key.
type ctxKey string

const userKey ctxKey = "user"

// Authenticator resolves a presented token key to a user.
type Authenticator interface {
	Authenticate(ctx context.Context, tokenKey string) (*domain.User, error)
}

// TokenAuth returns a middleware that requires a valid token in the
// Authorization header ("Token <key>" or "Bearer <key>") and stores the
// resolved user in the request context.
func TokenAuth(auth Authenticator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := extractTokenKey(r.Header.Get("Authorization"))
			user, err := auth.Authenticate(r.Context(), key)
			if err != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "Authentication required"})
				return
			}
			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractTokenKey strips the auth scheme prefix from the header value.
// Both the "Token" scheme used by the original API clients and the more
// common "Bearer" scheme are accepted.
func extractTokenKey(header string) string {
	for _, scheme := range []string{"Token ", "Bearer "} {
		if strings.HasPrefix(header, scheme) {
			return strings.TrimSpace(strings.TrimPrefix(header, scheme))
		}
	}
	return ""
}

// GetUserFromContext retrieves the authenticated user stored by TokenAuth.
// Returns nil if the request did not pass through the middleware.
func GetUserFromContext(ctx context.Context) *domain.User {
	if user, ok := ctx.Value(userKey).(*domain.User); ok {
		return user
	}
	return nil
}
