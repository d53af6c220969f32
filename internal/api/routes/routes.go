package routes

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"parking-backend/internal/api/handlers"
	"parking-backend/internal/config"
	"parking-backend/internal/mirror"
	"parking-backend/internal/repository"
	"parking-backend/internal/services"
	"parking-backend/internal/store"
)

// SetupRoutes wires repositories, services and handlers onto the router and
// returns the backup service so main can run the startup reconciliation.
func SetupRoutes(router *gin.Engine, s *store.Store, m mirror.Mirror, cfg *config.Config) *services.BackupService {
	// Initialize repositories
	vehicleRepo := repository.NewVehicleRepository(s)
	clientRepo := repository.NewClientRepository(s)
	settingsRepo := repository.NewSettingsRepository(s)
	statsRepo := repository.NewStatsRepository(s)

	// Initialize services
	authService := services.NewAuthService(settingsRepo)
	vehicleService := services.NewVehicleService(vehicleRepo)
	clientService := services.NewClientService(clientRepo)
	settingsService := services.NewSettingsService(settingsRepo)
	statsService := services.NewStatsService(statsRepo)
	backupService := services.NewBackupService(s, m, vehicleRepo, clientRepo, settingsRepo, statsRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	vehicleHandler := handlers.NewVehicleHandler(vehicleService)
	clientHandler := handlers.NewClientHandler(clientService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	statsHandler := handlers.NewStatsHandler(statsService)
	backupHandler := handlers.NewBackupHandler(backupService)
	healthHandler := handlers.NewHealthHandler()

	// API routes
	api := router.Group("/api")
	{
		api.POST("/auth/login", authHandler.Login)

		vehicles := api.Group("/vehicles")
		{
			vehicles.GET("", vehicleHandler.GetVehicles)
			vehicles.POST("", vehicleHandler.CreateVehicle)
			vehicles.PUT("/:id/exit", vehicleHandler.ExitVehicle)
		}

		clients := api.Group("/permanent-clients")
		{
			clients.GET("", clientHandler.GetClients)
			clients.POST("", clientHandler.CreateClient)
			clients.PUT("/:id", clientHandler.UpdateClient)
			clients.DELETE("/:id", clientHandler.DeleteClient)
		}

		api.GET("/settings", settingsHandler.GetSettings)
		api.PUT("/settings", settingsHandler.UpdateSettings)

		api.GET("/daily-stats", statsHandler.GetStats)
		api.POST("/daily-stats", statsHandler.UpsertStat)

		api.GET("/health", healthHandler.HealthCheck)

		api.POST("/backup", backupHandler.SaveBackup)
		api.GET("/backup", backupHandler.LoadBackup)
	}

	// Everything outside /api serves the front-end bundle, falling back to
	// index.html for client-side routes.
	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		path := filepath.Join(cfg.StaticDir, filepath.Clean("/"+c.Request.URL.Path))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			c.File(path)
			return
		}
		c.File(filepath.Join(cfg.StaticDir, "index.html"))
	})

	return backupService
}
