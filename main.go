// File: caredesk/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"caredesk/config"
	"caredesk/database"
	clientRepoPkg "caredesk/database/repository/client"
	notesRepoPkg "caredesk/database/repository/notes"
	profileRepoPkg "caredesk/database/repository/profile"
	"caredesk/handlers"
	"caredesk/middleware"
	"caredesk/routes"
	"caredesk/services/access"
	"caredesk/services/client"
	"caredesk/services/identity"
	"caredesk/services/notes"
	"caredesk/services/profile"
	"caredesk/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuditCache()

	// Identity provider: Firebase when credentials are configured, local
	// HS256 tokens otherwise (dev/test deployments).
	var verifier identity.Verifier
	if config.AppConfig.FirebaseCredentialsFile != "" {
		utils.FirebaseInit()
		verifier = identity.NewFirebaseVerifier(utils.AuthClient)
	} else {
		if config.AppConfig.JWTSecret == "" {
			logger.Sugar().Fatal("main: no identity provider configured: set FIREBASE_CREDENTIALS_FILE or JWT_SECRET")
		}
		logger.Sugar().Warn("main: using local JWT verifier; not for production")
		verifier = identity.NewLocalVerifier(config.AppConfig.JWTSecret)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	profRepo := profileRepoPkg.NewMongoProfileRepo()
	cliRepo := clientRepoPkg.NewMongoClientRepo()
	noteRepo := notesRepoPkg.NewMongoNotesRepo()

	// services.
	auditTrail := access.NewAuditTrail(utils.GetAuditCacheClient())
	roleResolver := &profile.DefaultRoleResolver{Repo: profRepo}
	profileService := &profile.DefaultProfileService{Repo: profRepo}
	clientService := &client.DefaultClientService{Repo: cliRepo}
	notesService := &notes.DefaultNotesService{Repo: noteRepo}

	profileHandler := handlers.NewProfileHandler(profileService)
	clientHandler := handlers.NewClientHandler(clientService)
	notesHandler := handlers.NewNotesHandler(notesService)
	adminHandler := handlers.NewAdminHandler(profileService, auditTrail)
	meHandler := handlers.NewMeHandler()

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Verifier: verifier,
		Resolver: roleResolver,
		Audit:    auditTrail,

		// Profile endpoints.
		CreateProfileHandler: profileHandler.CreateProfileHandler,
		GetMyProfileHandler:  profileHandler.GetMyProfileHandler,

		// UI-gating endpoints.
		GetPermissionsHandler: meHandler.GetPermissionsHandler,

		// Client endpoints.
		ListClientsHandler:      clientHandler.ListClientsHandler,
		GetClientHandler:        clientHandler.GetClientHandler,
		GetClientBillingHandler: clientHandler.GetClientBillingHandler,

		// Note endpoints.
		ListNotesHandler:  notesHandler.ListNotesHandler,
		GetNoteHandler:    notesHandler.GetNoteHandler,
		CreateNoteHandler: notesHandler.CreateNoteHandler,

		// Admin endpoints.
		GetAllUsersHandler:    adminHandler.GetAllUsersHandler,
		UpdateUserRoleHandler: adminHandler.UpdateUserRoleHandler,
		GetAuditTrailHandler:  adminHandler.GetAuditTrailHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
