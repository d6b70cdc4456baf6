package middleware

import (
	"context"
	"net/http"

	"github.com/shashiranjanraj/bistro-boss-server/pkg/response"
)

// RoleLookup resolves the stored role for an email. An empty string means
// the user has no role; a lookup failure (including "no such user") should
// return an error or empty role; both deny access.
type RoleLookup func(ctx context.Context, email string) (string, error)

// Admin is the role authority. It must run after Auth: the decoded email is
// read from context and the stored role re-queried on every request, so a
// revoked admin loses access on their next call rather than at token expiry.
func Admin(lookup RoleLookup) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromCtx(r.Context())
			if !ok {
				response.Unauthorized(w)
				return
			}

			role, err := lookup(r.Context(), claims.Email)
			if err != nil || role != "admin" {
				response.Forbidden(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
