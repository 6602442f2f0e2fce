package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Bateyjosue/marketplace/internal/config"
	"github.com/Bateyjosue/marketplace/internal/handlers"
	"github.com/Bateyjosue/marketplace/internal/mail"
	"github.com/Bateyjosue/marketplace/internal/models"
	"github.com/Bateyjosue/marketplace/internal/repositories"
	"github.com/Bateyjosue/marketplace/internal/services"
	"github.com/Bateyjosue/marketplace/internal/storage"
)

func main() {
	// --- Configuration ---
	// A missing store DSN, bucket, or mail key stops the process here.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	// --- Database ---
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&models.Listing{}, &models.Message{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- Content bucket ---
	store, err := storage.NewGCSObjectStore(context.Background(), cfg.StorageBucket, cfg.GoogleCredentials)
	if err != nil {
		log.Fatalf("Failed to initialize object store: %v", err)
	}
	defer store.Close()

	// --- Mail transport ---
	mailer := mail.NewResendMailer(cfg.ResendAPIKey, cfg.MailFrom)

	// --- Initialize Repositories ---
	listingRepo := repositories.NewGORMListingRepository(db)
	messageRepo := repositories.NewGORMMessageRepository(db)

	// --- Initialize Services ---
	listingService := services.NewListingService(listingRepo)
	messageService := services.NewMessageService(messageRepo, listingRepo, mailer, cfg.AppBaseURL)
	uploadService := services.NewUploadService(store)

	// --- Initialize Handlers ---
	listingHandler := handlers.NewListingHandler(listingService)
	messageHandler := handlers.NewMessageHandler(messageService)
	uploadHandler := handlers.NewUploadHandler(uploadService)
	emailHandler := handlers.NewEmailHandler(mailer)

	// --- Initialize Fiber App ---
	app := fiber.New()

	// --- Middleware ---
	app.Use(logger.New()) // Request logger

	// --- API Routes ---
	apiV1 := app.Group("/api/v1")
	listingHandler.RegisterRoutes(apiV1)
	messageHandler.RegisterRoutes(apiV1)
	uploadHandler.RegisterRoutes(apiV1)

	// The relay endpoint lives outside the versioned group; it is the
	// address the site's message composer posts envelopes to.
	emailHandler.RegisterRoutes(app.Group("/api"))

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", cfg.AppPort)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}
