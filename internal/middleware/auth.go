package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/9oormthon-univ/2025-SEASONTHON-TEAM-29-BE/internal/auth/token"
)

// unexported, collision-proof context key
type memberIDContextKeyType struct{}

var memberIDKey = memberIDContextKeyType{}

// MemberIDFromContext extracts the authenticated member ID from context.
func MemberIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(memberIDKey).(string)
	return id, ok
}

// AuthMiddleware validates bearer credentials. Requests carry their own
// credential on every call; no server-side session is consulted.
type AuthMiddleware struct {
	Tokens *token.Service
}

func NewAuthMiddleware(tokens *token.Service) *AuthMiddleware {
	return &AuthMiddleware{Tokens: tokens}
}

func (a *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 1. Read bearer credential
		raw := bearerToken(r)
		if raw == "" {
			Unauthenticated(w, "missing bearer token")
			return
		}

		// 2. Validate and extract the subject
		claims, err := a.Tokens.ParseAccess(raw)
		if err != nil {
			Unauthenticated(w, "invalid bearer token")
			return
		}

		// 3. Attach member_id to context
		ctx := context.WithValue(r.Context(), memberIDKey, claims.Subject)

		// 4. Continue request
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
