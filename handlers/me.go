// File: caredesk/handlers/me.go
package handlers

import (
	"net/http"

	"caredesk/middleware"
	"caredesk/services/access"

	"github.com/gin-gonic/gin"
)

// MeHandler answers the UI-gating queries over the caller's resolved role.
type MeHandler struct{}

// NewMeHandler creates a new MeHandler.
func NewMeHandler() *MeHandler {
	return &MeHandler{}
}

// GetPermissionsHandler returns the caller's role, granted permissions, and
// accessible data categories so the dashboard can gate what it renders.
func (mh *MeHandler) GetPermissionsHandler(c *gin.Context) {
	id, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"role":            id.Role,
		"roleDisplayName": id.Role.DisplayName(),
		"needsSetup":      id.NeedsSetup,
		"permissions":     access.PermissionsFor(id.Role),
		"categories":      access.AccessibleCategories(id.Role),
	})
}
