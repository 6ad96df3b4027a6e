// middleware/authorize.go
package middleware

import (
	"errors"
	"net/http"

	"caredesk/services/access"
	"caredesk/services/profile"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const identityContextKey = "identity"

// Authorize resolves the caller's role and checks it against the required
// permissions before the wrapped handler runs. An empty required list admits
// any authenticated principal, role or no role; the self-service profile
// setup endpoint depends on that.
//
// Failure surface: 401 when no principal was attached, 403 with reason
// "profile_incomplete" when the caller must finish setup, 403 with reason
// "insufficient_permissions" on a denied check (audited), 500 on anything
// unexpected with detail kept server-side.
func Authorize(resolver profile.RoleResolver, audit *access.AuditTrail, required ...access.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
			return
		}

		callerIdentity := access.Identity{Principal: principal}
		resolution, err := resolver.Resolve(c.Request.Context(), principal.ID)
		switch {
		case err == nil:
			callerIdentity.Role = resolution.Role
			callerIdentity.NeedsSetup = resolution.NeedsSetup
		case errors.Is(err, access.ErrProfileIncomplete):
			if len(required) > 0 {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "profile_incomplete"})
				return
			}
			// Setup endpoints proceed without a role; every permission
			// check still denies for the empty role.
		default:
			zap.L().Error("Role resolution failed",
				zap.String("principal_id", principal.ID), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal"})
			return
		}

		if len(required) > 0 {
			decision := access.Decide(callerIdentity.Role, required)
			if !decision.Allowed {
				zap.L().Warn("Authorization denied",
					zap.String("principal_id", principal.ID),
					zap.String("role", string(callerIdentity.Role)),
					zap.String("path", c.FullPath()),
					zap.String("reason", string(decision.Reason)))
				if audit != nil {
					event := access.AuditEvent{
						PrincipalID: principal.ID,
						Role:        callerIdentity.Role,
						Path:        c.FullPath(),
						Permissions: required,
						Reason:      string(decision.Reason),
					}
					if err := audit.Record(c.Request.Context(), event); err != nil {
						zap.L().Error("Failed to record audit event", zap.Error(err))
					}
				}
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient_permissions"})
				return
			}
		}

		c.Set(identityContextKey, callerIdentity)
		c.Request = c.Request.WithContext(access.ContextWithIdentity(c.Request.Context(), callerIdentity))
		c.Next()
	}
}

// IdentityFromContext returns the caller identity attached by Authorize.
func IdentityFromContext(c *gin.Context) (access.Identity, bool) {
	value, exists := c.Get(identityContextKey)
	if !exists {
		return access.Identity{}, false
	}
	id, ok := value.(access.Identity)
	return id, ok
}
