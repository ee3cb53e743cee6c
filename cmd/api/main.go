// @title Trivia API
// @version 1.0
// @description Categories, questions and a quiz dealer for the trivia game.
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8090
// @BasePath /api/v1.0
// @schemes http https
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "trivia-api/cmd/api/docs"
	"trivia-api/internal/adapter"
	"trivia-api/internal/cache"
	"trivia-api/internal/config"
	"trivia-api/internal/database"
	"trivia-api/internal/domain"
	"trivia-api/internal/handler"
	"trivia-api/internal/logger"
	"trivia-api/internal/middleware"
	"trivia-api/internal/repository"
	"trivia-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	ctx := context.Background()

	db, err := database.Open(ctx, cfg.DB)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	categoryRepository := repository.NewCategoryDatabaseAdapter(db)
	questionRepository := repository.NewQuestionDatabaseAdapter(db)

	// the category list cache is optional
	var cacheAdapter domain.Cache
	if cfg.Redis.Address != "" {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
		appLogger.Info("RedisCacheAdapter initialized")
	} else {
		appLogger.Warn("Redis cache is not configured. Running without cache.")
	}
	categoryTTL := cfg.ParseTTLStringOrDefault(cfg.CacheTTLs.CategoryList, 5*time.Minute)
	catalog := service.NewCategoryCatalog(categoryRepository, cacheAdapter, categoryTTL)

	categoryService := service.NewCategoryService(categoryRepository, catalog)
	questionService := service.NewQuestionService(questionRepository, categoryRepository, catalog)
	quizService := service.NewQuizService(questionRepository)

	var guard fiber.Handler
	if cfg.Auth.Enabled {
		authService, err := service.NewAuthService(cfg.Auth)
		if err != nil {
			appLogger.Fatal("Failed to create AuthService", zap.Error(err))
		}
		guard = middleware.Protected(authService)
		appLogger.Info("JWT guard enabled on mutating routes")
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BodyLimit:    cfg.Server.BodyLimit,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.AllowOrigins,
		AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Content-Type,Accept,Authorization",
		MaxAge:       300,
	}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)

	handler.RegisterRoutes(app, handler.Handlers{
		Category: handler.NewCategoryHandler(categoryService, questionService),
		Question: handler.NewQuestionHandler(questionService),
		Quiz:     handler.NewQuizHandler(quizService),
	}, guard)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
