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
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"catalog/internal/handlers"
	"catalog/internal/models"
	"catalog/internal/repositories"
	"catalog/internal/services"
)

func main() {
	// --- Configuration ---
	// Set up Viper to read configuration from environment variables.
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("MONGODB_URI", "mongodb://localhost:27017")
	viper.SetDefault("MONGODB_DATABASE", "catalog")
	viper.SetDefault("SEED_TESTDATA", false)
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")
	mongoURI := viper.GetString("MONGODB_URI")
	mongoDatabase := viper.GetString("MONGODB_DATABASE")
	seedTestData := viper.GetBool("SEED_TESTDATA")

	// --- Initialize MongoDB Client ---
	connectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mongoClient, err := mongo.Connect(connectCtx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}()

	if err := mongoClient.Ping(connectCtx, readpref.Primary()); err != nil {
		log.Fatalf("Failed to ping MongoDB: %v", err)
	}

	// --- Initialize Repositories ---
	productRepo := repositories.NewMongoProductRepository(mongoClient.Database(mongoDatabase))

	// --- Initialize Services ---
	productService := services.NewProductService(productRepo)

	// Seed demo catalog data when requested (useful for local runs).
	if seedTestData {
		seedProducts(productService)
	}

	// --- Initialize Handlers ---
	productHandler := handlers.NewProductHandler(productService)

	// --- Initialize Fiber App ---
	app := fiber.New()

	// --- Middleware ---
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New())

	// --- API Routes ---
	handlers.RegisterHomeRoute(app)
	productHandler.RegisterRoutes(app)

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		if err := mongoClient.Ping(c.UserContext(), readpref.Primary()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "unhealthy",
				"mongo":  err.Error(),
			})
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", appPort)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
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

// seedProducts resets the catalog and populates it with demo data, so each
// seeded run starts from the same clean state. Seeding goes through the
// service so the create-path rules (uniqueness, units default) apply.
func seedProducts(service *services.ProductService) {
	price := func(v float64) *float64 { return &v }
	units := func(v int64) *int64 { return &v }

	products := []*models.Product{
		models.NewProduct("IPhone 14 Pro Max", "Apple IPhone 14 Pro Max with 256GB ", "Apple",
			price(1000.0), units(10)),
		models.NewProduct("M1 Pro MacBook", "Apple 14 inches M1 Pro MacBook Pro", "Apple",
			price(2000.0), units(5)),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	existing, err := service.GetAllProducts(ctx)
	if err != nil {
		log.Printf("Error listing products before seeding: %v", err)
		return
	}
	for _, p := range existing {
		if err := service.DeleteProduct(ctx, p.ID); err != nil {
			log.Printf("Error clearing product %s before seeding: %v", p.Name, err)
		}
	}

	for _, p := range products {
		created, err := service.CreateProduct(ctx, p)
		if err != nil {
			log.Printf("Error seeding product %s: %v", p.Name, err)
			continue
		}
		log.Printf("Seeded product: %s (ID: %s)", created.Name, created.ID)
	}
}
