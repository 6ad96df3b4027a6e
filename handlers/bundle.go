// File: caredesk/handlers/bundle.go
package handlers

import (
	"caredesk/services/access"
	"caredesk/services/identity"
	"caredesk/services/profile"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers plus the pieces the routes
// package needs to attach middleware.
type HandlerBundle struct {
	Verifier identity.Verifier
	Resolver profile.RoleResolver
	Audit    *access.AuditTrail

	// Profile endpoints
	CreateProfileHandler gin.HandlerFunc
	GetMyProfileHandler  gin.HandlerFunc

	// UI-gating endpoints
	GetPermissionsHandler gin.HandlerFunc

	// Client endpoints
	ListClientsHandler      gin.HandlerFunc
	GetClientHandler        gin.HandlerFunc
	GetClientBillingHandler gin.HandlerFunc

	// Note endpoints
	ListNotesHandler  gin.HandlerFunc
	GetNoteHandler    gin.HandlerFunc
	CreateNoteHandler gin.HandlerFunc

	// Admin endpoints
	GetAllUsersHandler    gin.HandlerFunc
	UpdateUserRoleHandler gin.HandlerFunc
	GetAuditTrailHandler  gin.HandlerFunc
}
