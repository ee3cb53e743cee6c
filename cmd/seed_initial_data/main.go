package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"trivia-api/internal/config"
	"trivia-api/internal/database"
	"trivia-api/internal/dto"
	"trivia-api/internal/logger"
	"trivia-api/internal/repository"
	"trivia-api/internal/service"

	"go.uber.org/zap"
)

const defaultSeedFilePath = "configs/seed_data/trivia.json"

func main() {
	seedFilePath := defaultSeedFilePath
	if len(os.Args) > 1 {
		seedFilePath = os.Args[1]
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	log.Info("Loading seed data from file", zap.String("path", seedFilePath))
	byteValue, err := os.ReadFile(seedFilePath)
	if err != nil {
		log.Fatal("Failed to read seed file", zap.String("path", seedFilePath), zap.Error(err))
	}
	var seedCategories []dto.SeedCategory
	if err := json.Unmarshal(byteValue, &seedCategories); err != nil {
		log.Fatal("Failed to unmarshal seed data", zap.Error(err))
	}

	ctx := context.Background()
	db, err := database.Open(ctx, cfg.DB)
	if err != nil {
		log.Fatal("Failed to connect to Oracle database", zap.Error(err))
	}
	defer db.Close()

	seeder := service.NewSeedService(
		repository.NewTransactionManagerAdapter(db),
		repository.NewCategoryDatabaseAdapter(db),
		repository.NewQuestionDatabaseAdapter(db),
		log,
	)
	result, err := seeder.Seed(ctx, seedCategories)
	if err != nil {
		log.Fatal("Seeding failed, transaction rolled back", zap.Error(err))
	}
	log.Info("Initial data seeding process completed.",
		zap.Int("categories_created", result.CategoriesCreated),
		zap.Int("questions_created", result.QuestionsCreated))
}
