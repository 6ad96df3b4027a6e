// File: caredesk/handlers/profile.go
package handlers

import (
	"errors"
	"net/http"

	profileRepo "caredesk/database/repository/profile"
	"caredesk/middleware"
	"caredesk/services/access"
	"caredesk/services/profile"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProfileHandler encapsulates the self-service profile endpoints.
type ProfileHandler struct {
	Service profile.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(svc profile.ProfileService) *ProfileHandler {
	return &ProfileHandler{Service: svc}
}

// CreateProfileHandler creates the caller's profile. Open to any
// authenticated principal; first write wins.
func (ph *ProfileHandler) CreateProfileHandler(c *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	var input profile.SetupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_payload"})
		return
	}

	prof, err := ph.Service.CreateProfile(c.Request.Context(), principal, input)
	if err != nil {
		respondError(c, err)
		return
	}
	zap.L().Info("Profile created", zap.String("principal_id", principal.ID))
	c.JSON(http.StatusCreated, prof)
}

// GetMyProfileHandler returns the caller's profile with the resolved role.
// A missing profile is not an error here; the client routes to setup.
func (ph *ProfileHandler) GetMyProfileHandler(c *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	prof, err := ph.Service.GetProfile(c.Request.Context(), principal.ID)
	if err != nil {
		if errors.Is(err, profileRepo.ErrProfileNotFound) {
			c.JSON(http.StatusOK, gin.H{"needsSetup": true})
			return
		}
		respondError(c, err)
		return
	}

	role := access.ParseRole(prof.Role)
	needsSetup := prof.FirstName == "" || prof.LastName == "" || prof.Role == ""
	if id, ok := middleware.IdentityFromContext(c); ok && id.NeedsSetup {
		needsSetup = true
	}
	c.JSON(http.StatusOK, gin.H{
		"profile":         prof,
		"role":            role,
		"roleDisplayName": role.DisplayName(),
		"needsSetup":      needsSetup,
	})
}
