package main

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"parking-backend/internal/api/routes"
	"parking-backend/internal/config"
	"parking-backend/internal/mirror"
	"parking-backend/internal/store"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Open the local document store
	s, err := store.New(cfg.DataDir)
	if err != nil {
		log.Fatal("Failed to open data directory:", err)
	}

	// Select the backup mirror implementation
	m := mirror.New(cfg)
	if cfg.MirrorConfigured() {
		log.Printf("Remote backup mirror enabled (%s)", cfg.S3Endpoint)
	} else {
		log.Printf("Remote backup mirror not configured, running local-only")
	}

	// Setup Gin router
	router := gin.Default()

	// CORS middleware
	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
	}

	// Handle wildcard origin for development
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
		corsConfig.AllowCredentials = true
	}

	router.Use(cors.New(corsConfig))

	// Setup routes
	backupService := routes.SetupRoutes(router, s, m, cfg)

	// One-time startup reconciliation with the remote mirror; failures are
	// logged inside and never block startup.
	backupService.RestoreFromRemote(context.Background())

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	log.Fatal(router.Run(":" + cfg.Port))
}
