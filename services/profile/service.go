package profile

import (
	"context"
	"errors"
	"fmt"

	profileRepo "caredesk/database/repository/profile"
	"caredesk/models"
	"caredesk/services/access"
)

// ErrInvalidRole signals a role string outside the closed enumeration on an
// admin role-update operation.
var ErrInvalidRole = errors.New("invalid role")

// SetupInput is the payload for self-service profile creation.
type SetupInput struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
}

// ProfileService exposes profile setup and admin role management.
type ProfileService interface {
	// CreateProfile creates the caller's profile. First write wins.
	CreateProfile(ctx context.Context, principal models.Principal, input SetupInput) (*models.Profile, error)
	// GetProfile retrieves a profile by principal id.
	GetProfile(ctx context.Context, principalID string) (*models.Profile, error)
	// ListProfiles retrieves all profiles (admin user management).
	ListProfiles(ctx context.Context) ([]models.Profile, error)
	// UpdateRole changes a user's role. The role must name a member of the
	// closed enumeration.
	UpdateRole(ctx context.Context, principalID string, role string) error
}

// DefaultProfileService implements ProfileService over the profile repository.
type DefaultProfileService struct {
	Repo profileRepo.ProfileRepository
}

// CreateProfile creates the caller's profile with the least-privilege role.
// An admin assigns the real role afterwards; self-service setup never picks
// its own tier.
func (s *DefaultProfileService) CreateProfile(_ context.Context, principal models.Principal, input SetupInput) (*models.Profile, error) {
	prof := &models.Profile{
		ID:        principal.ID,
		Email:     principal.Email,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Role:      string(access.RoleViewer),
	}
	if err := s.Repo.Create(prof); err != nil {
		return nil, err
	}
	return prof, nil
}

// GetProfile retrieves a profile by principal id.
func (s *DefaultProfileService) GetProfile(_ context.Context, principalID string) (*models.Profile, error) {
	return s.Repo.GetByID(principalID)
}

// ListProfiles retrieves all profiles.
func (s *DefaultProfileService) ListProfiles(_ context.Context) ([]models.Profile, error) {
	return s.Repo.GetAll()
}

// UpdateRole changes a user's role. Unlike resolution, an explicit admin
// write with an unknown role is rejected rather than coerced.
func (s *DefaultProfileService) UpdateRole(_ context.Context, principalID string, role string) error {
	if !access.ValidRole(role) {
		return fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}
	return s.Repo.UpdateRole(principalID, role)
}
