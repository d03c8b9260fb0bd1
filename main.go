// main.go
package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/fadhlanhapp/tripdash-backend/config"
	"github.com/fadhlanhapp/tripdash-backend/handlers"
	"github.com/fadhlanhapp/tripdash-backend/repository"
	"github.com/fadhlanhapp/tripdash-backend/routes"
	"github.com/fadhlanhapp/tripdash-backend/services"
	"github.com/fadhlanhapp/tripdash-backend/sheets"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	// Initialize New Relic
	app, err := newrelic.NewApplication(
		newrelic.ConfigAppName("TripDash API"),
		newrelic.ConfigLicense(os.Getenv("NEW_RELIC_LICENSE_KEY")),
		newrelic.ConfigDistributedTracerEnabled(true),
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize New Relic: %v", err)
	}

	// Build configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Pick the session store: database-backed when configured,
	// in-memory otherwise
	var sessionStore repository.SessionStore
	if repository.DatabaseConfigured() {
		if err := repository.InitDB(); err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}
		defer repository.CloseDB()

		sessionStore, err = repository.NewPostgresSessionStore(repository.GetDB())
		if err != nil {
			log.Fatalf("Failed to initialize session store: %v", err)
		}
	} else {
		log.Println("No database configured, using in-memory sessions")
		sessionStore = repository.NewMemorySessionStore()
	}

	// Initialize services
	client := sheets.NewClient(cfg)
	dashboardService := services.NewDashboardService(client, cfg)

	// Initial load of the four sheets. A failure is not fatal: the
	// server starts in the "load failed" state and an admin can retry
	// via the refresh endpoint.
	loadCtx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	if err := dashboardService.Load(loadCtx); err != nil {
		log.Printf("Warning: initial dashboard load failed: %v", err)
	}
	cancel()

	// Set up Gin router
	router := gin.Default()

	// Add New Relic middleware
	if app != nil {
		router.Use(nrgin.Middleware(app))
	}

	// Configure CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // Change to your frontend URL in production
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Set up routes
	handlers.InitHandlers(dashboardService, sessionStore)
	routes.SetupRoutes(router)

	// Start server
	log.Printf("Server starting on port %s...", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
