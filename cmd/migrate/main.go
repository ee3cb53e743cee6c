package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"trivia-api/internal/config"
	"trivia-api/internal/database"
	"trivia-api/internal/logger"

	"go.uber.org/zap"
)

const usage = "usage: migrate [up|down|version]"

func main() {
	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	l := logger.Get()

	ctx := context.Background()
	db, err := database.Open(ctx, cfg.DB)
	if err != nil {
		l.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	m, err := database.NewMigrator(db)
	if err != nil {
		l.Fatal("Failed to load migrations", zap.Error(err))
	}
	defer m.Close()

	switch command {
	case "up":
		applied, err := m.Up(ctx)
		if err != nil {
			l.Fatal("Failed to run migrations", zap.Int("applied", applied), zap.Error(err))
		}
		l.Info("Migrations complete", zap.Int("applied", applied))
	case "down":
		reverted, err := m.Down(ctx)
		if err != nil {
			l.Fatal("Failed to revert migration", zap.Error(err))
		}
		if !reverted {
			l.Info("Nothing to revert")
		}
	case "version":
		version, dirty, err := m.Version(ctx)
		if err != nil {
			l.Fatal("Failed to read schema version", zap.Error(err))
		}
		fmt.Printf("version=%d dirty=%t\n", version, dirty)
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
}
