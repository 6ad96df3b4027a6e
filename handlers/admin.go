// File: caredesk/handlers/admin.go
package handlers

import (
	"net/http"
	"strconv"

	"caredesk/services/access"
	"caredesk/services/profile"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler encapsulates elevated admin-level operations.
type AdminHandler struct {
	Profiles profile.ProfileService
	Audit    *access.AuditTrail
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(profiles profile.ProfileService, audit *access.AuditTrail) *AdminHandler {
	return &AdminHandler{Profiles: profiles, Audit: audit}
}

// GetAllUsersHandler returns all user profiles.
func (ah *AdminHandler) GetAllUsersHandler(c *gin.Context) {
	profiles, err := ah.Profiles.ListProfiles(c.Request.Context())
	if err != nil {
		zap.L().Error("Failed to fetch all profiles", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal"})
		return
	}
	c.JSON(http.StatusOK, profiles)
}

type updateRoleInput struct {
	Role string `json:"role" binding:"required"`
}

// UpdateUserRoleHandler changes a user's role. Requires manage_users.
func (ah *AdminHandler) UpdateUserRoleHandler(c *gin.Context) {
	var input updateRoleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_payload"})
		return
	}

	userID := c.Param("id")
	if err := ah.Profiles.UpdateRole(c.Request.Context(), userID, input.Role); err != nil {
		respondError(c, err)
		return
	}
	zap.L().Info("User role updated",
		zap.String("user_id", userID), zap.String("role", input.Role))
	c.JSON(http.StatusOK, gin.H{"id": userID, "role": input.Role})
}

// GetAuditTrailHandler returns recent authorization denials.
func (ah *AdminHandler) GetAuditTrailHandler(c *gin.Context) {
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "50"), 10, 64)
	events, err := ah.Audit.Recent(c.Request.Context(), limit)
	if err != nil {
		zap.L().Error("Failed to read audit trail", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal"})
		return
	}
	c.JSON(http.StatusOK, events)
}
