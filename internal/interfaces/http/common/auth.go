package common

import (
	"context"
	"net/http"
	"strings"
)

type contextKey string

const authUserContextKey contextKey = "authUser"

// Roles carried in the JWT "role" claim.
const (
	RoleJobseeker = "jobseeker"
	RoleEmployer  = "employer"
	RoleAdmin     = "admin"
)

// AuthenticatedUser represents the JWT-derived principal.
type AuthenticatedUser struct {
	ID       string `json:"id"`
	Name     string `json:"name,omitempty"`
	Username string `json:"username,omitempty"`
	Picture  string `json:"picture,omitempty"`
	Role     string `json:"role,omitempty"`
}

// HasRole reports whether the user carries one of roles.
func (u AuthenticatedUser) HasRole(roles ...string) bool {
	role := strings.ToLower(strings.TrimSpace(u.Role))
	for _, r := range roles {
		if role == r {
			return true
		}
	}
	return false
}

// ContextWithUser stores the authenticated user into context.
func ContextWithUser(ctx context.Context, user AuthenticatedUser) context.Context {
	return context.WithValue(ctx, authUserContextKey, user)
}

// UserFromContext extracts the authenticated user from context.
func UserFromContext(ctx context.Context) (AuthenticatedUser, bool) {
	user, ok := ctx.Value(authUserContextKey).(AuthenticatedUser)
	return user, ok
}

// RequireRole は認証済みユーザーのロールを検証するミドルウェア。
// authMiddleware の後段に置くこと。
func RequireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := UserFromContext(r.Context())
			if !ok {
				WriteJSON(nil, w, http.StatusUnauthorized, map[string]string{"error": "인증이 필요합니다"})
				return
			}
			if !user.HasRole(roles...) {
				WriteJSON(nil, w, http.StatusForbidden, map[string]string{"error": "접근 권한이 없습니다"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
