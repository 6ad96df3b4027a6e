package profile_test

import (
	"context"
	"testing"

	profileRepo "caredesk/database/repository/profile"
	"caredesk/models"
	"caredesk/services/access"
	"caredesk/services/profile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProfileDefaultsToViewer(t *testing.T) {
	repo := &stubProfileRepo{}
	svc := &profile.DefaultProfileService{Repo: repo}

	principal := models.Principal{ID: "u1", Email: "ada@example.com", EmailVerified: true}
	prof, err := svc.CreateProfile(context.Background(), principal, profile.SetupInput{
		FirstName: "Ada", LastName: "L",
	})
	require.NoError(t, err)
	assert.Equal(t, "u1", prof.ID)
	assert.Equal(t, string(access.RoleViewer), prof.Role)
}

func TestCreateProfileFirstWriteWins(t *testing.T) {
	repo := &stubProfileRepo{}
	svc := &profile.DefaultProfileService{Repo: repo}
	principal := models.Principal{ID: "u1", Email: "ada@example.com"}

	_, err := svc.CreateProfile(context.Background(), principal, profile.SetupInput{FirstName: "Ada", LastName: "L"})
	require.NoError(t, err)

	_, err = svc.CreateProfile(context.Background(), principal, profile.SetupInput{FirstName: "Eve", LastName: "M"})
	assert.ErrorIs(t, err, profileRepo.ErrProfileExists)
	assert.Equal(t, "Ada", repo.profiles["u1"].FirstName)
}

func TestUpdateRoleRejectsUnknownRole(t *testing.T) {
	repo := &stubProfileRepo{
		profiles: map[string]*models.Profile{
			"u1": {ID: "u1", FirstName: "Ada", LastName: "L", Role: "viewer"},
		},
	}
	svc := &profile.DefaultProfileService{Repo: repo}

	err := svc.UpdateRole(context.Background(), "u1", "superuser")
	assert.ErrorIs(t, err, profile.ErrInvalidRole)
	assert.Empty(t, repo.updated)

	require.NoError(t, svc.UpdateRole(context.Background(), "u1", "therapist"))
	assert.Equal(t, "therapist", repo.updated["u1"])
}
