package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/INFR3120-F25/coursetrack-service/internal/auth"
	"github.com/INFR3120-F25/coursetrack-service/internal/config"
	"github.com/INFR3120-F25/coursetrack-service/internal/events"
	"github.com/INFR3120-F25/coursetrack-service/internal/handlers"
	"github.com/INFR3120-F25/coursetrack-service/internal/repositories/mongodb"
	"github.com/INFR3120-F25/coursetrack-service/internal/services"
	"github.com/INFR3120-F25/coursetrack-service/internal/session"
	"github.com/INFR3120-F25/coursetrack-service/internal/utils"
	"github.com/INFR3120-F25/coursetrack-service/internal/validator"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	slogLogger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	logger := utils.NewSlogLogger(slogLogger)

	// Initialize the assignment store; unreachable storage is fatal
	repoManager := mongodb.NewMongoRepositoryManager(mongodb.RepositoryConfig{
		URI:      cfg.MongoURI,
		Database: cfg.MongoDB,
	})
	if err := repoManager.Initialize(context.Background()); err != nil {
		log.Fatalf("Failed to initialize assignment store: %v", err)
	}
	repo := repoManager.GetRepository()

	// Session store: Redis when configured, in-memory otherwise
	var sessionStore session.Store
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("Failed to parse REDIS_URL: %v", err)
		}
		redisClient = redis.NewClient(opts)
		sessionStore = session.NewRedisStore(redisClient, config.SessionTTL)
	} else {
		logger.Warn("REDIS_URL not set, sessions are in-memory and lost on restart")
		sessionStore = session.NewMemoryStore(config.SessionTTL)
	}

	// OAuth providers
	authService := auth.InitProviders(cfg)

	// Initialize validator
	validator := validator.New()

	// Event publisher with an in-process logging subscriber
	publisher := events.NewWatermillPublisher(slogLogger)
	subscriberCtx, stopSubscriber := context.WithCancel(context.Background())
	defer stopSubscriber()
	if err := publisher.RunLoggingSubscriber(subscriberCtx); err != nil {
		log.Fatalf("Failed to start event subscriber: %v", err)
	}

	// Initialize services
	serviceManager := services.NewDefaultServiceManager(repo, slogLogger, validator, publisher)
	if err := serviceManager.Initialize(context.Background()); err != nil {
		log.Fatalf("Failed to initialize services: %v", err)
	}

	// Initialize handlers
	handlerManager := handlers.NewHandlerManager(serviceManager, validator, logger, authService, sessionStore, repo)

	// Setup Gin router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	handlers.SetupMiddleware(router, logger)
	handlerManager.SetupRoutes(router)

	// Create HTTP server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Starting server", "port", cfg.Port, "environment", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	stopSubscriber()
	if err := serviceManager.Shutdown(ctx); err != nil {
		log.Printf("Failed to shutdown services: %v", err)
	}

	if err := repoManager.Shutdown(ctx); err != nil {
		log.Printf("Failed to close assignment store: %v", err)
	}

	if redisClient != nil {
		redisClient.Close()
	}

	logger.Info("Server exited")
}
