package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"trivia-api/internal/adapter/quizgen"
	"trivia-api/internal/config"
	"trivia-api/internal/database"
	"trivia-api/internal/logger"
	"trivia-api/internal/repository"
	"trivia-api/internal/service"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		return
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		return
	}
	defer logger.Sync()

	logger.Get().Info("Batch process starting up...")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(ctx, cfg.DB)
	if err != nil {
		logger.Get().Fatal("Failed to connect to Oracle database", zap.Error(err))
	}
	defer db.Close()

	generator, err := quizgen.NewOllamaQuestionGenerator(cfg.LLM)
	if err != nil {
		logger.Get().Fatal("Failed to initialize question generator", zap.Error(err))
	}
	logger.Get().Info("Initialized question generator (Ollama).", zap.String("model", cfg.LLM.Model))

	batchSvc := service.NewBatchService(
		repository.NewCategoryDatabaseAdapter(db),
		repository.NewQuestionDatabaseAdapter(db),
		generator,
		cfg.LLM,
		logger.Get(),
	)

	inserted, err := batchSvc.GenerateNewQuestions(ctx)
	if err != nil {
		logger.Get().Fatal("Batch process failed", zap.Int("inserted", inserted), zap.Error(err))
	}
	logger.Get().Info("Batch process completed successfully.", zap.Int("inserted", inserted))
}
