package routes

import (
	"tabaro3-api/internal/adapters/http/handlers"
	"tabaro3-api/internal/adapters/http/middleware"
	"tabaro3-api/internal/adapters/persistence/repositories"
	"tabaro3-api/internal/config"
	"tabaro3-api/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db)
	requestRepo := repositories.NewBloodRequestRepository(db)
	reportRepo := repositories.NewDonorReportRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, refreshTokenRepo, cfg)
	userService := services.NewUserService(userRepo)
	donorService := services.NewDonorService(userRepo)
	requestService := services.NewRequestService(requestRepo)
	reportService := services.NewReportService(reportRepo, userRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, cfg)
	userHandler := handlers.NewUserHandler(userService)
	donorHandler := handlers.NewDonorHandler(donorService, reportService)
	requestHandler := handlers.NewRequestHandler(requestService)
	reportHandler := handlers.NewReportHandler(reportService)
	dashboardHandler := handlers.NewDashboardHandler(userService, requestService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API v1 group
	apiV1 := app.Group("/api/v1")
	apiV1.Get("/", healthHandler.APIInfo)

	authRequired := middleware.AuthMiddleware(authService, cfg)
	adminOnly := middleware.AdminOnly()

	// Auth routes
	auth := apiV1.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.RefreshToken)
	auth.Post("/logout", authHandler.Logout)
	auth.Post("/logout-all", authRequired, authHandler.LogoutAll)
	auth.Get("/me", authRequired, authHandler.Me)

	// Public donor routes: directory search and abuse reports
	donors := apiV1.Group("/donors")
	donors.Get("/search", donorHandler.Search)
	donors.Post("/:id/reports", donorHandler.FileReport)

	// Blood request routes. /home must register before /:id.
	requests := apiV1.Group("/requests")
	requests.Get("/", requestHandler.ListOpen)
	requests.Get("/home", requestHandler.Home)
	requests.Get("/:id", requestHandler.GetByID)
	requests.Post("/", authRequired, requestHandler.Create)
	requests.Put("/:id/fulfill", authRequired, requestHandler.MarkFulfilled)

	// Member routes
	apiV1.Get("/dashboard", authRequired, dashboardHandler.GetDashboard)
	apiV1.Get("/profile", authRequired, userHandler.GetProfile)
	apiV1.Put("/profile", authRequired, userHandler.UpdateProfile)

	// Admin routes
	admin := apiV1.Group("/admin", authRequired, adminOnly)
	admin.Get("/users", userHandler.ListUsers)
	admin.Post("/users", userHandler.CreateAdmin)
	admin.Get("/users/:id", userHandler.GetUser)
	admin.Put("/users/:id", userHandler.UpdateUser)
	admin.Delete("/users/:id", userHandler.DeleteUser)
	admin.Get("/requests", requestHandler.AdminList)
	admin.Put("/requests/:id", requestHandler.AdminUpdate)
	admin.Delete("/requests/:id", requestHandler.AdminDelete)
	admin.Get("/reports", reportHandler.ListReports)
	admin.Put("/reports/:id/resolve", reportHandler.ResolveReport)
}
