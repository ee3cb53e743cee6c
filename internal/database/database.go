package database

import (
	"context"
	"fmt"
	"time"

	"trivia-api/internal/config"
	"trivia-api/internal/logger"

	_ "github.com/godror/godror" // registers "godror"
	"github.com/jmoiron/sqlx"
	go_ora "github.com/sijms/go-ora/v2"
	"go.uber.org/zap"
)

// DSN builds the connection string for the configured driver.
func DSN(cfg config.DBConfig) (string, error) {
	switch cfg.Driver {
	case config.DriverGoOra:
		return go_ora.BuildUrl(cfg.Host, cfg.Port, cfg.DBName, cfg.User, cfg.Password, nil), nil
	case config.DriverGodror:
		connectString := fmt.Sprintf("%s:%d/%s", cfg.Host, cfg.Port, cfg.DBName)
		return fmt.Sprintf("user=%q password=%q connectString=%q", cfg.User, cfg.Password, connectString), nil
	default:
		return "", fmt.Errorf("unsupported db driver %q", cfg.Driver)
	}
}

// Open connects to Oracle with the configured driver and pool limits and pings it.
func Open(ctx context.Context, cfg config.DBConfig) (*sqlx.DB, error) {
	dsn, err := DSN(cfg)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Open(cfg.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Get().Info("Connected to Oracle database",
		zap.String("driver", cfg.Driver),
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("service", cfg.DBName))
	return db, nil
}
