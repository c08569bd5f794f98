package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/renovaverde/content-service/internal/cache"
	"github.com/renovaverde/content-service/internal/config"
	"github.com/renovaverde/content-service/internal/events"
	"github.com/renovaverde/content-service/internal/handlers"
	"github.com/renovaverde/content-service/internal/models"
	"github.com/renovaverde/content-service/internal/quiz"
	"github.com/renovaverde/content-service/internal/relevance"
	"github.com/renovaverde/content-service/internal/repositories/postgres"
	"github.com/renovaverde/content-service/internal/services"
	"github.com/renovaverde/content-service/internal/utils"
	"github.com/renovaverde/content-service/pkg"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		os.Exit(1)
	}

	var logger utils.Logger
	if cfg.Environment == "production" {
		logger = utils.NewDefaultLogger()
	} else {
		logger = utils.NewDevelopmentLogger()
	}
	slogLogger := utils.ToSlogLogger(logger)

	db, err := pkg.InitDatabase(cfg)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := db.AutoMigrate(
		&models.Article{},
		&models.Comment{},
		&models.Subscriber{},
		&models.QuizSubmission{},
	); err != nil {
		logger.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	var cacheService cache.CacheService
	redisClient, err := pkg.NewRedisClient(cfg)
	if err != nil {
		logger.Warn("Redis unavailable, caching disabled", "error", err)
		cacheService = cache.NoopCache{}
	} else {
		defer redisClient.Close()
		cacheService = cache.NewRedisCache(redisClient, logger)
	}

	publisher, err := cfg.Events.CreateEventPublisher(slogLogger)
	if err != nil {
		logger.Warn("Event publisher unavailable, using mock", "error", err)
		publisher = events.NewMockEventPublisher(slogLogger)
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Error("Failed to close event publisher", "error", err)
		}
	}()

	repo := postgres.NewRepository(db)
	validator := utils.NewValidator()
	ranker := relevance.NewRanker(relevance.NewSeededShuffler(time.Now().UnixNano()))

	catalog := quiz.DefaultCatalog()
	if err := catalog.Validate(validator); err != nil {
		logger.Error("Quiz catalog failed validation", "error", err)
		os.Exit(1)
	}

	serviceManager := services.NewServiceManager(services.ManagerConfig{
		Repo:      repo,
		Cache:     cacheService,
		Publisher: publisher,
		Catalog:   catalog,
		Ranker:    ranker,
		Logger:    slogLogger,
		Validator: validator,

		RelatedPoolSize: cfg.RelatedPoolSize,
		RelatedCacheTTL: time.Duration(cfg.RelatedCacheTTLSeconds) * time.Second,
		ListCacheTTL:    time.Duration(cfg.ListCacheTTLSeconds) * time.Second,
	})

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.LoggerMiddleware(logger))

	handlerManager := handlers.NewHandlerManager(serviceManager, logger)
	handlerManager.SetupRoutes(router)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info("Starting content service", "port", cfg.Port, "environment", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Forced shutdown", "error", err)
	}
}
