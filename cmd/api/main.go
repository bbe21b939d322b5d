package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/medconnect/medconnect-api/internal/config"
	"github.com/medconnect/medconnect-api/internal/handlers"
	"github.com/medconnect/medconnect-api/internal/payment"
	"github.com/medconnect/medconnect-api/internal/repo"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables.")
	}
	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Println("JWT_SECRET is NOT SET; session routes will reject all tokens.")
	}

	// --- Database Connection ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	store, err := repo.NewStore(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer store.Close(context.Background())
	if err := store.Ping(ctx); err != nil {
		log.Fatalf("MongoDB ping failed: %v", err)
	}
	if err := store.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}
	log.Println("Successfully connected to MongoDB!")

	// --- Payment Gateway ---
	gateway := payment.NewSSLCommerz(cfg.StoreID, cfg.StorePassword, cfg.Sandbox)

	// --- Handlers & Router ---
	h := handlers.NewHandler(store, gateway, cfg)
	r := handlers.NewRouter(h)

	log.Printf("Starting server on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
