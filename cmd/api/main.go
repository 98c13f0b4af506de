package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	_ "github.com/cinetech/api/docs" // Swagger docs (generated)
	"github.com/cinetech/api/internal/auth"
	"github.com/cinetech/api/internal/catalog"
	"github.com/cinetech/api/internal/config"
	"github.com/cinetech/api/internal/database"
	"github.com/cinetech/api/internal/email"
	"github.com/cinetech/api/internal/friends"
	httpServer "github.com/cinetech/api/internal/http"
	"github.com/cinetech/api/internal/logging"
	"github.com/cinetech/api/internal/ratelimit"
	"github.com/cinetech/api/internal/status"
	"github.com/cinetech/api/internal/user"
)

// @title           Cinetech API
// @version         1.0
// @description     REST API for the Cinetech movie and TV cataloging service: accounts with email verification, per-user media statuses, friends, and catalog search.

// @contact.name   API Support
// @contact.email  support@cinetech.example

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.

func main() {
	if err := run(); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	logger := logging.NewLogger(cfg.Server.IsDevelopment())
	logger.Info("starting application",
		"env", cfg.Server.Env,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	db, err := database.Connect(cfg.Database.ConnectionString())
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	// Ensure tables and unique indexes exist
	if err := database.CreateSchema(context.Background(), db); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	// Initialize Redis connection
	redisClient, err := initRedis(cfg.Redis)
	if err != nil {
		return fmt.Errorf("failed to initialize Redis: %w", err)
	}
	defer redisClient.Close()

	// Initialize repositories
	userRepo := user.NewRepository(db)
	statusRepo := status.NewRepository(db)
	friendsRepo := friends.NewRepository(db)

	// Initialize rate limiter
	rateLimiter := ratelimit.NewLimiter(redisClient)

	// Initialize PASETO service
	pasetoService, err := auth.NewPasetoService(cfg.Auth.PasetoKey)
	if err != nil {
		return fmt.Errorf("failed to initialize PASETO service: %w", err)
	}

	// Initialize email service
	emailService := email.NewService(
		cfg.Email.SMTPHost,
		cfg.Email.SMTPPort,
		cfg.Email.SMTPUser,
		cfg.Email.SMTPPassword,
		cfg.Email.FromName,
		logger,
	)

	// Initialize domain services
	authService := auth.NewService(
		userRepo,
		pasetoService,
		emailService,
		logger,
		cfg.Auth.SessionTokenDuration,
		cfg.Auth.VerificationCodeTTL,
	)
	statusService := status.NewService(statusRepo)
	friendsService := friends.NewService(friendsRepo, userRepo)

	catalogCache := catalog.NewRedisCache(redisClient, cfg.Catalog.CacheTTL)
	catalogClient := catalog.NewClient(cfg.Catalog.BaseURL, cfg.Catalog.APIKey, catalogCache, logger)

	// Initialize HTTP handlers
	authHandler := auth.NewHandler(
		authService,
		rateLimiter,
		logger,
		!cfg.Server.IsDevelopment(), // isProduction
		cfg.Auth.SessionTokenDuration,
	)
	authMiddleware := auth.NewMiddleware(pasetoService, userRepo)

	// Initialize router
	router := httpServer.NewRouter(cfg, httpServer.RouterDeps{
		Auth:           authHandler,
		AuthMiddleware: authMiddleware,
		Status:         status.NewHandler(statusService),
		Friends:        friends.NewHandler(friendsService),
		Catalog:        catalog.NewHandler(catalogClient),
		Logger:         logger,
	})

	// Initialize HTTP server
	serverAddr := ":" + cfg.Server.Port
	server := httpServer.NewServer(
		serverAddr,
		router,
		cfg.Server.ReadTimeout,
		cfg.Server.WriteTimeout,
		logger,
	)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- server.Start()
	}()

	// Wait for interrupt signal or server error
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		logger.Info("received shutdown signal", "signal", sig.String())

		// Graceful shutdown with timeout
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// initRedis initializes the Redis connection and returns a Redis client
func initRedis(cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Verify connection
	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}

	return client, nil
}
