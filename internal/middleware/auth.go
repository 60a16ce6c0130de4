package middleware

import (
	"context"
	"net/http"
	"strings"

	"campus-eats/internal/model"
)

type tokenValidator interface {
	Parse(tokenString string) (model.SessionClaims, error)
}

type contextKey string

const userIDContextKey contextKey = "user_id"

// AuthMiddleware resolves a session token to a user id. The token may arrive
// in the role's auth cookie or as a Bearer header; the role claim inside the
// token must match the role the route is mounted for.
type AuthMiddleware struct {
	validator tokenValidator
}

func NewAuthMiddleware(validator tokenValidator) *AuthMiddleware {
	return &AuthMiddleware{validator: validator}
}

func (m *AuthMiddleware) Require(role model.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := extractToken(r, role.CookieName())
			if raw == "" {
				writeUnauthenticated(w)
				return
			}

			claims, err := m.validator.Parse(raw)
			if err != nil || claims.Role != role {
				writeUnauthenticated(w)
				return
			}

			ctx := context.WithValue(r.Context(), userIDContextKey, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext returns the authenticated user id set by Require.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDContextKey).(string)
	return id, ok && id != ""
}

func extractToken(r *http.Request, cookieName string) string {
	if cookie, err := r.Cookie(cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return strings.TrimSpace(header[7:])
	}

	return ""
}

func writeUnauthenticated(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = jsonEncode(w, model.StatusResponse{
		Success: false,
		Message: "Not authorized",
	})
}
