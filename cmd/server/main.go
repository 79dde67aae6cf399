package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"tabaro3-api/internal/adapters/http/middleware"
	"tabaro3-api/internal/adapters/http/routes"
	"tabaro3-api/internal/adapters/persistence/models"
	"tabaro3-api/internal/adapters/persistence/repositories"
	"tabaro3-api/internal/config"
	"tabaro3-api/internal/core/services"

	"github.com/gofiber/fiber/v2"

	_ "tabaro3-api/docs" // Swagger docs
)

// @title Tabaro3 API
// @version 1.0
// @description Blood donor directory and request matching API
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@tabaro3.org

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase()

	// Auto migrate (creates tables if not exist)
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}
	log.Println("Database migration completed")

	// Seed the bootstrap admin account
	if err := config.NewSeeder(db).Run(); err != nil {
		log.Printf("Warning: failed to seed admin account: %v", err)
	}

	// Nightly refresh token purge (03:30 daily)
	cronService := services.NewCronService(repositories.NewRefreshTokenRepository(db))
	cronService.Start()
	defer cronService.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Tabaro3 API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (pass db and cfg for dependency injection)
	routes.Setup(app, db, cfg)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
	log.Println("Server stopped gracefully")
}
