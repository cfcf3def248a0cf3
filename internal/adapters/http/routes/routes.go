package routes

import (
	"solarhub-portal/internal/adapters/http/handlers"
	"solarhub-portal/internal/adapters/http/middleware"
	"solarhub-portal/internal/adapters/persistence/repositories"
	"solarhub-portal/internal/config"
	"solarhub-portal/internal/core/services"
	"solarhub-portal/internal/pkg/audit"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application. db is nil when the
// memory user store is active.
func Setup(app *fiber.App, cfg *config.Config, userRepo repositories.UserRepository, rec audit.Recorder, db *gorm.DB) {
	// Initialize services
	authService := services.NewAuthService(userRepo, rec, cfg)
	calcService := services.NewCalcService(cfg)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(cfg, db)
	authHandler := handlers.NewAuthHandler(authService, cfg)
	logsHandler := handlers.NewLogsHandler(rec, cfg)
	calcHandler := handlers.NewCalcHandler(calcService)

	// Route guard runs on every request: public routes pass, everything
	// else needs a valid session inside the caller's role territory
	app.Use(middleware.RouteGuard(cfg))

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Auth routes (public, rate limited)
	authRoutes := app.Group("/api/auth")
	authRoutes.Post("/login", middleware.AuthRateLimiter(), authHandler.Login)
	authRoutes.Post("/logout", authHandler.Logout)
	authRoutes.Post("/register", middleware.StrictRateLimiter(), authHandler.Register)
	authRoutes.Get("/session", authHandler.Session)

	// Audit logs (admin only, enforced by the handler)
	app.Get("/api/logs", logsHandler.GetLogs)

	// Calculator proxy (session required via the route guard)
	calcRoutes := app.Group("/api/calc")
	calcRoutes.Post("/estimate", calcHandler.Estimate)
	calcRoutes.Post("/estimate/detail", calcHandler.EstimateDetail)
}
