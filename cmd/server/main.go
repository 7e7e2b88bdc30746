package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/socialsync/socialdb/internal/config"
	"github.com/socialsync/socialdb/internal/database"
	"github.com/socialsync/socialdb/internal/handlers"
	"github.com/socialsync/socialdb/internal/services"
	"github.com/socialsync/socialdb/internal/utils"

	_ "github.com/socialsync/socialdb/docs/api" // Swagger docs
)

// @title socialdb API
// @version 1.0.0
// @description Users, linked social media accounts, and ingested content over a document-style store

// @license.name MIT

// @host localhost:3000
// @BasePath /api
// @schemes http https

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run auto-migrations; the unique indexes created here carry the
	// uniqueness invariants the services rely on.
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	// Prometheus metrics
	prometheus := fiberprometheus.New("socialdb")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API routes under /api
	api := app.Group("/api")

	// Create handlers
	healthHandler := &handlers.HealthHandler{Cfg: cfg, DB: db}
	userHandler := &handlers.UserHandler{Users: services.NewUserService(db)}
	accountHandler := &handlers.SocialAccountHandler{Accounts: services.NewSocialAccountService(db)}
	contentHandler := &handlers.ContentHandler{Content: services.NewContentService(db)}

	// Health
	api.Get("/health", healthHandler.Health)
	api.Get("/health/status", healthHandler.Status)

	// Users
	api.Post("/users", userHandler.Create)
	api.Get("/users", userHandler.List)
	api.Get("/users/:id", userHandler.GetByID)
	api.Put("/users/:id", userHandler.Update)
	api.Delete("/users/:id", userHandler.Delete)
	api.Get("/users/:id/accounts", accountHandler.ListByUser)

	// Social accounts
	api.Post("/accounts", accountHandler.Create)
	api.Get("/accounts", accountHandler.List)
	api.Get("/accounts/:id", accountHandler.GetByID)
	api.Put("/accounts/:id", accountHandler.Update)
	api.Post("/accounts/:id/fetched", accountHandler.TouchLastFetched)
	api.Delete("/accounts/:id", accountHandler.Delete)
	api.Get("/accounts/:id/content", contentHandler.Feed)

	// Content
	api.Post("/content", contentHandler.Create)
	api.Get("/content", contentHandler.List)
	api.Get("/content/:id", contentHandler.GetByID)
	api.Delete("/content/:id", contentHandler.Delete)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Resource not found")
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	log.Printf("Starting server on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}

// customErrorHandler handles errors globally
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return utils.ErrorResponse(c, code, message)
}
