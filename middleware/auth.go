// middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	"caredesk/models"
	"caredesk/services/identity"

	"github.com/gin-gonic/gin"
)

const principalContextKey = "principal"

// AuthMiddleware verifies the bearer credential and attaches the resulting
// principal to the request. A missing or malformed Authorization header is
// rejected before reaching the identity provider; rejected credentials look
// identical to the caller.
func AuthMiddleware(verifier identity.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		principal, err := verifier.Verify(c.Request.Context(), tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
			return
		}

		c.Set(principalContextKey, principal)
		c.Next()
	}
}

// PrincipalFromContext returns the verified principal attached by
// AuthMiddleware.
func PrincipalFromContext(c *gin.Context) (models.Principal, bool) {
	value, exists := c.Get(principalContextKey)
	if !exists {
		return models.Principal{}, false
	}
	principal, ok := value.(models.Principal)
	return principal, ok
}
