package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	httpapi "wardrobe-rental-backend/internal/api/http"
	"wardrobe-rental-backend/internal/config"
	"wardrobe-rental-backend/internal/db"
	"wardrobe-rental-backend/internal/logger"
	"wardrobe-rental-backend/internal/repository/postgres"
	"wardrobe-rental-backend/internal/security"
	"wardrobe-rental-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.yaml", "Path to configuration file")
	flag.Parse()

	// Optional .env for local development
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Wardrobe Rental Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	conn, err := db.Open(cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer conn.Close()
	logger.Info("Database connection established")

	// Run migrations
	if err := db.Migrate(conn); err != nil {
		logger.Error("Failed to run migrations", "error", err)
		log.Fatalf("Failed to run migrations: %v", err)
	}
	logger.Info("Database schema up to date")

	// Initialize Repositories
	store := postgres.NewStore(conn)

	// Initialize Security
	tokenManager := security.NewTokenManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
		cfg.JWT.ResetTokenExpiry,
	)

	// Initialize Email Service
	emailSvc := service.NewEmailService(
		cfg.Email.APIKey,
		cfg.Email.FromEmail,
		cfg.Email.FromName,
		cfg.Email.PasswordResetURL,
	)

	// Initialize Services
	authSvc := service.NewAuthService(store.UserRepository, tokenManager, emailSvc)
	rentalSvc := service.NewRentalService(
		store.RentalRepository,
		store.ClothingItemRepository,
		store.CustomerRepository,
	)
	inventorySvc := service.NewInventoryService(store.ClothingItemRepository)
	customerSvc := service.NewCustomerService(store.CustomerRepository)
	statsSvc := service.NewStatsService(store.StatsRepository)

	// Initialize HTTP handlers and router
	router := httpapi.NewRouter(httpapi.Handlers{
		Auth:      httpapi.NewAuthHandler(authSvc),
		Rentals:   httpapi.NewRentalHandler(rentalSvc),
		Inventory: httpapi.NewInventoryHandler(inventorySvc),
		Customers: httpapi.NewCustomerHandler(customerSvc),
		Stats:     httpapi.NewStatsHandler(statsSvc),
		AuthMW:    httpapi.NewAuthMiddleware(tokenManager),
	})

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
