package routes

import (
	"net/http"
	"time"

	"caredesk/handlers"
	"caredesk/middleware"
	"caredesk/services/access"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterProfileRoutes registers the self-service profile endpoints. The
// empty permission list on Authorize admits any authenticated principal,
// which is what lets a brand-new user create their profile.
func RegisterProfileRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/profile")
	{
		api.Use(middleware.AuthMiddleware(hb.Verifier))
		api.Use(middleware.Authorize(hb.Resolver, hb.Audit))
		api.POST("", hb.CreateProfileHandler)
		api.GET("", hb.GetMyProfileHandler)
	}
}

// RegisterMeRoutes registers the UI-gating query endpoint.
func RegisterMeRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/me")
	{
		api.Use(middleware.AuthMiddleware(hb.Verifier))
		api.Use(middleware.Authorize(hb.Resolver, hb.Audit))
		api.GET("/permissions", hb.GetPermissionsHandler)
	}
}

// RegisterClientRoutes registers client record endpoints. The permission
// gate covers the operation; the sensitivity filter inside the service
// shapes what each role actually receives.
func RegisterClientRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/clients")
	{
		api.Use(middleware.AuthMiddleware(hb.Verifier))
		api.GET("",
			middleware.Authorize(hb.Resolver, hb.Audit, access.PermViewClients),
			hb.ListClientsHandler)
		api.GET("/:id",
			middleware.Authorize(hb.Resolver, hb.Audit, access.PermViewClients),
			hb.GetClientHandler)
		api.GET("/:id/billing",
			middleware.Authorize(hb.Resolver, hb.Audit, access.PermViewBilling),
			hb.GetClientBillingHandler)
	}
}

// RegisterNotesRoutes registers therapy note endpoints.
func RegisterNotesRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/notes")
	{
		api.Use(middleware.AuthMiddleware(hb.Verifier))
		api.GET("",
			middleware.Authorize(hb.Resolver, hb.Audit, access.PermViewNotes),
			hb.ListNotesHandler)
		api.GET("/:id",
			middleware.Authorize(hb.Resolver, hb.Audit, access.PermViewNotes),
			hb.GetNoteHandler)
		api.POST("",
			middleware.Authorize(hb.Resolver, hb.Audit, access.PermCreateNotes),
			hb.CreateNoteHandler)
	}
}

// RegisterAdminRoutes registers user management and the audit view.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.Use(middleware.AuthMiddleware(hb.Verifier))
		api.GET("/users",
			middleware.Authorize(hb.Resolver, hb.Audit, access.PermManageUsers),
			hb.GetAllUsersHandler)
		api.PUT("/users/:id/role",
			middleware.Authorize(hb.Resolver, hb.Audit, access.PermManageUsers),
			hb.UpdateUserRoleHandler)
		api.GET("/audit",
			middleware.Authorize(hb.Resolver, hb.Audit, access.PermViewAudit),
			hb.GetAuditTrailHandler)
	}
}

// RegisterBootstrapRoutes registers the break-glass role assignment used to
// promote the first admin before any admin profile exists.
func RegisterBootstrapRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bootstrap")
	{
		api.Use(middleware.BootstrapAuthMiddleware())
		api.PUT("/users/:id/role", hb.UpdateUserRoleHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm CareDesk"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterProfileRoutes(r, hb)
	RegisterMeRoutes(r, hb)
	RegisterClientRoutes(r, hb)
	RegisterNotesRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterBootstrapRoutes(r, hb)
	RegisterHealthRoute(r)
}
