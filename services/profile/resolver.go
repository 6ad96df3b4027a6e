package profile

import (
	"context"
	"errors"

	profileRepo "caredesk/database/repository/profile"
	"caredesk/services/access"

	"go.uber.org/zap"
)

// Resolution is the outcome of resolving a principal's role.
type Resolution struct {
	Role access.Role
	// NeedsSetup is raised when the role came from the degraded-store
	// fallback and the caller should complete profile setup out-of-band.
	NeedsSetup bool
}

// RoleResolver resolves a principal id to a role via the profile store.
type RoleResolver interface {
	Resolve(ctx context.Context, principalID string) (Resolution, error)
}

// DefaultRoleResolver implements RoleResolver over the profile repository.
type DefaultRoleResolver struct {
	Repo profileRepo.ProfileRepository
}

// Resolve looks up the principal's profile and returns its role.
//
// Two fallback paths exist and must stay distinct: a missing or incomplete
// profile means a truly new user who must complete setup
// (ErrProfileIncomplete), while a store-level failure means a known-ish user
// on a degraded backend, who proceeds with the fallback role and a
// needs-setup flag.
func (r *DefaultRoleResolver) Resolve(_ context.Context, principalID string) (Resolution, error) {
	prof, err := r.Repo.GetByID(principalID)
	if err != nil {
		if errors.Is(err, profileRepo.ErrProfileNotFound) {
			return Resolution{}, access.ErrProfileIncomplete
		}
		zap.L().Warn("Profile store unreachable, assigning fallback role",
			zap.String("principal_id", principalID),
			zap.String("fallback_role", string(access.FallbackRole)),
			zap.Error(err))
		return Resolution{Role: access.FallbackRole, NeedsSetup: true}, nil
	}

	if prof.FirstName == "" || prof.LastName == "" || prof.Role == "" {
		return Resolution{}, access.ErrProfileIncomplete
	}

	// Garbage role strings from the store coerce to viewer, never fail open.
	return Resolution{Role: access.ParseRole(prof.Role)}, nil
}
