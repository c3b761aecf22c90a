package middleware

import (
	"context"
	"net/http"
	"strings"

	h "hackfinder/internal/delivery/http/helpers"
	"hackfinder/internal/domain"
)

type contextKey string

const userKey contextKey = "user"

// SetUser returns a context with the authenticated user set. Used by auth middleware.
func SetUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// UserFromContext returns the authenticated user from the context, if present.
func UserFromContext(ctx context.Context) (*domain.User, bool) {
	u, ok := ctx.Value(userKey).(*domain.User)
	return u, ok
}

// BearerToken extracts the Bearer token from the Authorization header.
// Returns "" when the header is missing or malformed.
func BearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(auth, prefix) {
		return ""
	}
	return strings.TrimSpace(auth[len(prefix):])
}

// RequireAuth returns a wrapper that resolves the Bearer token to a user via
// the credential gate and sets the user in the request context. requiredRole
// is domain.RoleAdmin or "" for any authenticated user. The gate re-reads the
// role from the store on every request, so role changes apply immediately.
func RequireAuth(gate domain.AuthService, requiredRole string) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			token := BearerToken(r)
			if token == "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "missing or invalid authorization header")
				return
			}
			user, err := gate.Authorize(r.Context(), token, requiredRole)
			if err != nil {
				status, code, msg := h.MapError(err)
				h.WriteJSONError(w, status, code, msg)
				return
			}
			next(w, r.WithContext(SetUser(r.Context(), user)))
		}
	}
}

// OptionalAuth resolves the Bearer token when one is present and valid, and
// otherwise lets the request through anonymously. Listings use this to decide
// whether to personalize.
func OptionalAuth(gate domain.AuthService) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if token := BearerToken(r); token != "" {
				if user, err := gate.Authorize(r.Context(), token, ""); err == nil {
					r = r.WithContext(SetUser(r.Context(), user))
				}
			}
			next(w, r)
		}
	}
}
