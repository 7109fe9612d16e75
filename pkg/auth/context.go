package auth

import (
	"context"

	"github.com/google/uuid"
)

type principalContextKey struct{}

// Principal is the authenticated caller identity the authorization
// middleware stores in the request context.
type Principal struct {
	UserID uuid.UUID
	Email  string
	Role   Role
}

// AsPrincipal derives the request principal from a user record.
func (u *User) AsPrincipal() Principal {
	return Principal{UserID: u.ID, Email: u.Email, Role: u.Role}
}

// ContextWithPrincipal returns a child context carrying the principal.
func ContextWithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalContextKey{}, p)
}

// PrincipalFromContext extracts the principal stored by the middleware.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalContextKey{}).(Principal)
	return p, ok
}
