// Package middleware provides the authentication and role-gating layers
// applied to protected routes.
package middleware
