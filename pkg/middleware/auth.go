package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/shashiranjanraj/bistro-boss-server/pkg/auth"
	"github.com/shashiranjanraj/bistro-boss-server/pkg/response"
)

// claimsKey is the unexported context key holding the decoded token claims.
type claimsKey struct{}

// WithClaims stores decoded claims in ctx for downstream consumers.
func WithClaims(ctx context.Context, claims *auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

// ClaimsFromCtx extracts the decoded claims attached by Auth.
func ClaimsFromCtx(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(*auth.Claims)
	return claims, ok && claims != nil
}

// Auth is the access guard. It requires an "Authorization: Bearer <token>"
// header, verifies signature and expiry, and attaches the decoded identity
// to the request context. Verification is a pure computation; this
// middleware never touches storage.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || token == "" {
			response.Unauthorized(w)
			return
		}

		claims, err := auth.ValidateToken(token)
		if err != nil {
			response.Unauthorized(w)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
	})
}
