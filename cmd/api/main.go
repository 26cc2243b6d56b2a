package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"evalboard/internal/adapter"
	"evalboard/internal/adapter/genclient"
	"evalboard/internal/adapter/ingest"
	"evalboard/internal/cache"
	"evalboard/internal/config"
	"evalboard/internal/database"
	"evalboard/internal/domain"
	"evalboard/internal/handler"
	"evalboard/internal/logger"
	"evalboard/internal/middleware"
	"evalboard/internal/repository"
	"evalboard/internal/service"
	"evalboard/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get("User-Agent")),
		)

		return err
	}
}

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Connect to database
	db, err := database.NewSQLXSQLiteDB(cfg.Database.Path)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Initialize Redis cache. The response cache is optional: when Redis
	// is unreachable the server still starts, every prompt-mode request
	// just goes straight to the generation service.
	var cacheAdapter domain.Cache
	if cfg.Redis.Address != "" {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			appLogger.Warn("Redis unavailable, generation response cache disabled", zap.Error(err))
		} else {
			appLogger.Info("Successfully connected to Redis")
			cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
		}
	}

	// Outbound client for the question-generation service
	generationClient, err := genclient.NewClient(cfg.Generation.BaseURL, cfg.Generation.RequestTimeout)
	if err != nil {
		appLogger.Fatal("Failed to create generation client", zap.Error(err))
	}

	// Initialize the draft store and repositories
	draftStore := domain.NewDraftStore()
	draftPersister := repository.NewDraftDatabaseAdapter(db)

	// Initialize services
	validator := validation.NewValidator()
	requestBuilder := service.NewRequestBuilder(validator)
	generationService := service.NewGenerationService(generationClient, draftStore, cacheAdapter, cfg.Generation.CacheTTL)
	appLogger.Info("GenerationService initialized")
	draftService := service.NewDraftService(draftStore, draftPersister)
	appLogger.Info("DraftService initialized")

	// Initialize handlers
	ingestor := ingest.NewFileIngestor(int64(cfg.Server.BodyLimit))
	generationHandler := handler.NewGenerationHandler(generationService, requestBuilder, ingestor, validator)
	draftHandler := handler.NewDraftHandler(draftService, validator)
	healthHandler := handler.NewHealthHandler(db, cacheAdapter)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		BodyLimit:    cfg.Server.BodyLimit,
		ErrorHandler: middleware.ErrorHandler(),
	})

	// Add request logging middleware
	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept", MaxAge: 300}))
	app.Use(recover.New())

	// Health check
	app.Get("/healthz", healthHandler.Check)

	// API group
	apiGroup := app.Group("/api")

	// Session routes
	sessionGroup := apiGroup.Group("/sessions")
	sessionGroup.Post("/", generationHandler.CreateSession)
	sessionGroup.Post("/:id/reset", generationHandler.ResetSession)
	sessionGroup.Delete("/:id", generationHandler.DisposeSession)

	// Generation routes
	generationGroup := apiGroup.Group("/generation")
	generationGroup.Post("/prompt", generationHandler.GenerateFromPrompt)
	generationGroup.Post("/document", generationHandler.GenerateFromDocument)

	// Draft routes
	draftGroup := apiGroup.Group("/drafts")
	draftGroup.Get("/", draftHandler.List)
	draftGroup.Get("/export", draftHandler.Export)
	draftGroup.Post("/save", draftHandler.SaveAll)
	draftGroup.Post("/sets/:id/restore", draftHandler.Restore)
	draftGroup.Patch("/:id", draftHandler.Edit)
	draftGroup.Delete("/:id", draftHandler.Remove)

	// Start server
	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", os.Getenv("ENV")))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
