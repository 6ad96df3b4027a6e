// File: caredesk/handlers/respond.go
package handlers

import (
	"errors"
	"net/http"

	clientRepo "caredesk/database/repository/client"
	notesRepo "caredesk/database/repository/notes"
	profileRepo "caredesk/database/repository/profile"
	"caredesk/services/access"
	"caredesk/services/profile"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError translates service errors into the small set of externally
// observable signals. Expected conditions pass their reason through;
// anything unexpected is logged in full and surfaced as a bare 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, access.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
	case errors.Is(err, access.ErrProfileIncomplete):
		c.JSON(http.StatusForbidden, gin.H{"error": "profile_incomplete"})
	case errors.Is(err, access.ErrUnauthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": "insufficient_permissions"})
	case errors.Is(err, access.ErrUnknownCategory):
		zap.L().Error("Unknown data category reached a handler", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal"})
	case errors.Is(err, profileRepo.ErrProfileNotFound),
		errors.Is(err, clientRepo.ErrClientNotFound),
		errors.Is(err, notesRepo.ErrNoteNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
	case errors.Is(err, profileRepo.ErrProfileExists):
		c.JSON(http.StatusConflict, gin.H{"error": "profile_exists"})
	case errors.Is(err, profile.ErrInvalidRole):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_role"})
	default:
		zap.L().Error("Handler failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal"})
	}
}
