package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/princeprakhar/portfolio-backend/internal/api/handlers"
	"github.com/princeprakhar/portfolio-backend/internal/api/middleware"
	"github.com/princeprakhar/portfolio-backend/internal/config"
	"github.com/princeprakhar/portfolio-backend/internal/identity"
	"github.com/princeprakhar/portfolio-backend/internal/services"
	"github.com/princeprakhar/portfolio-backend/internal/store"
	"github.com/princeprakhar/portfolio-backend/pkg/logger"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, ratingStore store.RatingStore, cfg *config.Config) {
	// Middleware
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.RateLimitMiddleware(cfg))

	// Initialize services
	emailService := services.NewEmailService(cfg)
	authService := services.NewAuthService(db, cfg.JWTSecret)
	flagService := services.NewFlagService(db)
	projectService := services.NewProjectService(db)
	contentService := services.NewContentService(db)
	contactService := services.NewContactService(db, emailService)
	ratingService := services.NewRatingService(ratingStore)

	var storageService *services.StorageService
	if cfg.StorageBucket != "" {
		storageService = services.NewStorageService(cfg)
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, cfg)
	flagHandler := handlers.NewFlagHandler(flagService)
	projectHandler := handlers.NewProjectHandler(projectService, flagService)
	contentHandler := handlers.NewContentHandler(contentService)
	contactHandler := handlers.NewContactHandler(contactService)
	ratingHandler := handlers.NewRatingHandler(ratingService)
	uploadHandler := handlers.NewUploadHandler(storageService)

	visitorIdentity := middleware.VisitorIdentity(identity.NewCookieProvider(cfg.IsProduction()))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "message": "Server is running"})
	})

	// API routes
	api := router.Group("/api/v1")

	// Public content
	api.GET("/flags", flagHandler.GetFlags)
	api.GET("/skills", contentHandler.GetSkills)
	api.GET("/experience", contentHandler.GetExperience)
	api.GET("/credentials", contentHandler.GetCredentials)

	projects := api.Group("/projects", middleware.RequireFlag(flagService, services.FlagProjects))
	{
		projects.GET("/", projectHandler.GetProjects)
		projects.GET("/:project_id", projectHandler.GetProject)
	}

	// Rating routes: every request resolves the pseudonymous visitor
	// identity first
	ratings := api.Group("/ratings",
		middleware.RequireFlag(flagService, services.FlagProjectRatings),
		visitorIdentity,
	)
	{
		ratings.POST("/:project_id", ratingHandler.SubmitRating)
		ratings.GET("/:project_id/stats", ratingHandler.GetStats)
		ratings.GET("/:project_id/me", ratingHandler.GetRatingState)
	}

	api.POST("/contact",
		middleware.RequireFlag(flagService, services.FlagContactForm),
		contactHandler.SubmitMessage,
	)

	// Admin auth routes (public)
	adminAuth := api.Group("/admin/auth")
	{
		adminAuth.POST("/login", authHandler.Login)
		adminAuth.POST("/logout", authHandler.Logout)
		adminAuth.GET("/session", authHandler.GetSession)
		adminAuth.POST("/change-password", middleware.AdminAuth(cfg), authHandler.ChangePassword)
	}

	// Admin routes
	admin := api.Group("/admin", middleware.AdminAuth(cfg))
	{
		admin.GET("/projects", projectHandler.GetProjects)
		admin.POST("/projects", projectHandler.CreateProject)
		admin.PUT("/projects/:project_id", projectHandler.UpdateProject)
		admin.DELETE("/projects/:project_id", projectHandler.DeleteProject)

		admin.POST("/skills", contentHandler.CreateSkill)
		admin.PUT("/skills/:id", contentHandler.UpdateSkill)
		admin.DELETE("/skills/:id", contentHandler.DeleteSkill)

		admin.POST("/experience", contentHandler.CreateExperience)
		admin.PUT("/experience/:id", contentHandler.UpdateExperience)
		admin.DELETE("/experience/:id", contentHandler.DeleteExperience)

		admin.POST("/credentials", contentHandler.CreateCredential)
		admin.PUT("/credentials/:id", contentHandler.UpdateCredential)
		admin.DELETE("/credentials/:id", contentHandler.DeleteCredential)

		admin.GET("/messages", contactHandler.GetMessages)
		admin.DELETE("/messages/:id", contactHandler.DeleteMessage)

		admin.PUT("/flags/:name", flagHandler.UpdateFlag)

		admin.POST("/upload", uploadHandler.UploadImages)
	}

	logger.Info("Routes initialized successfully")
}
