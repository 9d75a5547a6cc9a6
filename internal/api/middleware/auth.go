package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/profenger/feedback-hub/internal/domain"
	"github.com/profenger/feedback-hub/internal/service"
)

type contextKey string

const identityKey contextKey = "identity"

// Identity is the decoded token payload attached to the request context by
// Auth for downstream handlers and authorizers.
type Identity struct {
	ID    string
	Email string
	Role  domain.Role
}

// Auth validates the bearer token on every request it wraps. A missing or
// malformed header is rejected before any store access.
func Auth(authService *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeError(w, http.StatusUnauthorized, "authorization required")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				writeError(w, http.StatusUnauthorized, "authorization required")
				return
			}

			claims, err := authService.ValidateToken(parts[1])
			if err != nil {
				log.Printf("ERROR [middleware.Auth] token validation failed: %v", err)
				writeError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			identity := Identity{
				ID:    claims.Subject,
				Email: claims.Email,
				Role:  claims.Role,
			}

			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireSuperAdmin narrows access to superAdmin-only routes. It must be
// composed after Auth; without an identity in context it rejects outright.
func RequireSuperAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := GetIdentity(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "authorization required")
			return
		}
		if identity.Role != domain.RoleSuperAdmin {
			writeError(w, http.StatusForbidden, "insufficient permissions")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func GetIdentity(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityKey).(Identity)
	return identity, ok
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
