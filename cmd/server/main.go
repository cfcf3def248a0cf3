package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"solarhub-portal/internal/adapters/http/middleware"
	"solarhub-portal/internal/adapters/http/routes"
	"solarhub-portal/internal/adapters/persistence/models"
	"solarhub-portal/internal/adapters/persistence/repositories"
	"solarhub-portal/internal/config"
	"solarhub-portal/internal/pkg/audit"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	_ "solarhub-portal/docs" // Swagger docs
)

// @title SolarHub Portal API
// @version 1.0
// @description Lead-generation portal backend for SolarHub solar installations.

// @contact.name API Support
// @contact.email support@solarhub.example.com

// @host portal.solarhub.example.com
// @BasePath /
// @schemes https

func main() {
	// Load configuration. Refuses to start without JWT_SECRET.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Pick the user store
	var db *gorm.DB
	var userRepo repositories.UserRepository
	switch cfg.UserStore {
	case config.StoreMySQL:
		db, err = config.ConnectDatabase(cfg)
		if err != nil {
			log.Fatalf("❌ Failed to connect to database: %v", err)
		}
		defer config.CloseDatabase(db)

		if err := models.AutoMigrate(db); err != nil {
			log.Fatalf("❌ Failed to auto migrate: %v", err)
		}
		log.Println("✅ Database migration completed")

		userRepo = repositories.NewUserRepository(db)
	default:
		userRepo, err = repositories.NewMemoryUserRepository()
		if err != nil {
			log.Fatalf("❌ Failed to build memory user store: %v", err)
		}
		log.Println("⚠️ Using in-memory user store with fixture accounts (NOT for production)")
	}

	// Audit log: bounded in-memory ring, injected everywhere it is needed
	auditLog := audit.NewRing(cfg.Audit.Capacity)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "SolarHub Portal API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes
	routes.Setup(app, cfg, userRepo, auditLog, db)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
