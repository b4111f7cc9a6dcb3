package middleware

import (
	"net/http"

	"github.com/atelier-web/atelier/pkg/identity"
	"github.com/atelier-web/atelier/pkg/model"
)

// RequireRole gates a route to principals holding one of the given roles.
// It assumes the Authenticator ran earlier in the chain; a request with no
// principal at all is treated as unauthenticated rather than unauthorized.
func RequireRole(roles ...model.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := identity.Get(r.Context())
			if !ok || principal == nil {
				http.Error(w, "Access denied. Not authenticated.", http.StatusUnauthorized)
				return
			}
			if !principal.HasRole(roles...) {
				http.Error(w, "Access denied. Insufficient permissions.", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
