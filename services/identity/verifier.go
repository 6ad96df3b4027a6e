package identity

import (
	"context"

	"caredesk/models"
)

// Verifier validates a bearer credential against the identity provider and
// yields the verified principal. Implementations must fail with
// access.ErrUnauthenticated for any rejected credential without
// distinguishing the cause to the caller.
type Verifier interface {
	Verify(ctx context.Context, credential string) (models.Principal, error)
}
