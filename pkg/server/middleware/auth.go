package middleware

import (
	"net/http"
	"strings"

	"github.com/atelier-web/atelier/pkg/authn"
	"github.com/atelier-web/atelier/pkg/identity"
)

// Authenticator is middleware that resolves a bearer token to a request
// principal. A missing or malformed header is rejected before the token is
// inspected; a present token that fails verification is rejected with a
// distinct status so clients can tell "sign in" from "signed in wrong".
type Authenticator struct {
	Tokens *authn.TokenAuthority
}

// NewAuthenticator creates an Authenticator backed by the token authority.
func NewAuthenticator(tokens *authn.TokenAuthority) *Authenticator {
	return &Authenticator{Tokens: tokens}
}

// Middleware enforces bearer authentication and stashes the verified
// principal in the request context.
func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			http.Error(w, "Access denied. No token provided.", http.StatusUnauthorized)
			return
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			http.Error(w, "Access denied. No token provided.", http.StatusUnauthorized)
			return
		}

		principal, err := a.Tokens.Verify(token)
		if err != nil {
			http.Error(w, "Invalid token.", http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r.WithContext(identity.Set(r.Context(), principal)))
	})
}
