package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/princeprakhar/portfolio-backend/internal/api/routes"
	"github.com/princeprakhar/portfolio-backend/internal/config"
	"github.com/princeprakhar/portfolio-backend/internal/database"
	"github.com/princeprakhar/portfolio-backend/internal/services"
	"github.com/princeprakhar/portfolio-backend/internal/store"
	"github.com/princeprakhar/portfolio-backend/pkg/logger"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize logger
	logger.Init()

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Init(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("Failed to initialize database", err)
	}

	// Select the rating store backend once at startup; everything above it
	// sees the same contract.
	ratingStore, err := buildRatingStore(cfg, db)
	if err != nil {
		logger.Fatal("Failed to initialize rating store", err)
	}

	ctx := context.Background()

	// Seed feature flags and the admin account
	if err := services.NewFlagService(db).EnsureDefaults(ctx); err != nil {
		logger.Fatal("Failed to seed feature flags", err)
	}
	authService := services.NewAuthService(db, cfg.JWTSecret)
	if err := authService.EnsureAdmin(ctx, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		logger.Fatal("Failed to ensure admin account", err)
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := gin.New()

	// Setup routes
	routes.SetupRoutes(router, db, ratingStore, cfg)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logger.Info("Server starting on port " + port)
	if err := router.Run(":" + port); err != nil {
		logger.Fatal("Failed to start server", err)
	}
}

func buildRatingStore(cfg *config.Config, contentDB *gorm.DB) (store.RatingStore, error) {
	backend := cfg.RatingsBackendName()
	logger.Info("Using rating store backend: " + backend)

	if backend == "memory" {
		return store.NewMemoryStore(), nil
	}

	// sqlite and postgres both run through the SQL adapter; RATINGS_DATABASE_URL
	// moves the rating rows to a dedicated database, otherwise they share the
	// content connection.
	if cfg.RatingsDatabaseURL != "" {
		ratingsDB, err := database.InitRatings(cfg.RatingsDatabaseURL)
		if err != nil {
			return nil, err
		}
		return store.NewSQLStore(ratingsDB), nil
	}
	return store.NewSQLStore(contentDB), nil
}
