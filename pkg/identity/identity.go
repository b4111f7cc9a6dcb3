package identity

import (
	"context"
	"time"

	"github.com/atelier-web/atelier/pkg/model"
)

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

const (
	// Key is the context key for Principal.
	Key ContextKey = "principal"
)

// Principal is the authenticated identity attached to a request.
type Principal struct {
	UserID    uint
	Role      model.Role
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// IsAdmin returns true if the principal holds the ADMIN role.
func (p *Principal) IsAdmin() bool {
	return p != nil && p.Role == model.RoleAdmin
}

// HasRole returns true if the principal's role is in the given set.
func (p *Principal) HasRole(roles ...model.Role) bool {
	if p == nil {
		return false
	}
	for _, r := range roles {
		if p.Role == r {
			return true
		}
	}
	return false
}

// IsOwner reports whether the principal owns a resource authored by ownerID.
// A nil principal owns nothing.
func IsOwner(p *Principal, ownerID uint) bool {
	return p != nil && p.UserID == ownerID
}

// Get retrieves the Principal from context.
func Get(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(Key).(*Principal)
	return p, ok
}

// Set stores the Principal in context.
func Set(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, Key, p)
}
