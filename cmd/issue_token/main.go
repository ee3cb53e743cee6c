package main

import (
	"context"
	"fmt"
	"os"

	"trivia-api/internal/config"
	"trivia-api/internal/logger"
	"trivia-api/internal/service"

	"go.uber.org/zap"
)

func main() {
	subject := "admin"
	if len(os.Args) > 1 {
		subject = os.Args[1]
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	authService, err := service.NewAuthService(cfg.Auth)
	if err != nil {
		logger.Get().Fatal("Failed to create AuthService", zap.Error(err))
	}
	token, err := authService.CreateJWT(context.Background(), subject, cfg.Auth.AccessTokenTTL)
	if err != nil {
		logger.Get().Fatal("Failed to sign token", zap.Error(err))
	}
	fmt.Println(token)
}
