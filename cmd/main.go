package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	s3 "enrollify/aws"
	"enrollify/internal/config"
	"enrollify/internal/handlers"
	"enrollify/internal/media"
	"enrollify/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx := context.Background()

	userStore, err := newStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open user store: %v", err)
	}
	// Startup gate: the backing storage must be ready before any request
	// is accepted.
	if err := userStore.Init(ctx); err != nil {
		log.Fatalf("Failed to initialize user store: %v", err)
	}

	userHandler := handlers.NewUserHandler(userStore, newUploader(cfg))

	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	r.Get("/api/health", handlers.Health)

	// User Routes
	r.Route("/api/user", func(r chi.Router) {
		r.Post("/create", userHandler.CreateUser)
		r.Get("/{cnic}", userHandler.GetUserByCNIC)
	})

	// Start the server
	fmt.Printf("Server is running on http://localhost:%s\n", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, r))
}

func newStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	if cfg.StoreDriver == "mongo" {
		return store.NewMongoStore(ctx, cfg.MongoURI, cfg.MongoDB)
	}
	return store.NewFileStore(cfg.StorePath), nil
}

func newUploader(cfg *config.Config) media.Uploader {
	if cfg.MediaDriver == "s3" {
		return media.NewS3Uploader(s3.AWSConfig{
			AccessKeyID:     cfg.AWSAccessKeyID,
			AccessKeySecret: cfg.AWSSecretAccess,
			Region:          cfg.AWSRegion,
		}, cfg.S3Bucket)
	}
	return media.NewCloudinaryClient(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
}
