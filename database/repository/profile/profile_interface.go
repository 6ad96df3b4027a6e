package profileRepo

import (
	"errors"

	"caredesk/models"
)

// ErrProfileNotFound signals a missing profile record, as distinct from a
// store-level failure. The role resolver treats the two very differently.
var ErrProfileNotFound = errors.New("profile not found")

// ErrProfileExists signals a create against an existing profile. Profiles
// are first-write-wins; there is no re-creation.
var ErrProfileExists = errors.New("profile already exists")

// ProfileRepository defines methods for profile data access.
type ProfileRepository interface {
	// GetByID retrieves a profile by principal id.
	GetByID(id string) (*models.Profile, error)
	// GetAll retrieves all profiles.
	GetAll() ([]models.Profile, error)
	// Create inserts a new profile record. Fails with ErrProfileExists if a
	// profile for the id is already present.
	Create(profile *models.Profile) error
	// UpdateRole changes the role field of an existing profile.
	UpdateRole(id string, role string) error
}
