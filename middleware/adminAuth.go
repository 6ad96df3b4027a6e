package middleware

import (
	"net/http"
	"strings"

	"caredesk/config"
	"caredesk/models"
	"caredesk/services/access"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// BootstrapAuthMiddleware authenticates the break-glass bootstrap token used
// to assign the first admin role before any admin profile exists. The config
// stores only a bcrypt hash of the token; an empty hash disables the group.
func BootstrapAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		hash := config.AppConfig.AdminBootstrapHash
		if hash == "" {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "not_found"})
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(tokenString)); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
			return
		}

		bootstrapIdentity := access.Identity{
			Principal: models.Principal{ID: "bootstrap"},
			Role:      access.RoleAdmin,
		}
		c.Set(identityContextKey, bootstrapIdentity)
		c.Request = c.Request.WithContext(access.ContextWithIdentity(c.Request.Context(), bootstrapIdentity))
		c.Next()
	}
}
