package access

import (
	"context"

	"caredesk/models"
)

// Identity is the request-scoped caller: verified principal plus resolved
// role. It is threaded through each operation's context rather than held in
// any shared state, so concurrent requests for different principals never
// clobber each other.
type Identity struct {
	Principal models.Principal
	Role      Role
	// NeedsSetup is raised when the role came from the degraded-store
	// fallback path and the caller should be routed to profile setup.
	NeedsSetup bool
}

type identityContextKey struct{}

// ContextWithIdentity stores the caller identity in ctx.
func ContextWithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityContextKey{}, id)
}

// IdentityFromContext extracts the caller identity from ctx.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityContextKey{}).(Identity)
	return id, ok
}
