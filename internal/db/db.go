package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/snnyvrz/locallibrary/internal/config"
)

const defaultDelayBetweenTry = 2 * time.Second

// Dialector picks the gorm driver named by cfg.DBDriver.
func Dialector(cfg *config.Config) gorm.Dialector {
	if cfg.DBDriver == "postgres" {
		return postgres.Open(cfg.DSN())
	}
	return sqlite.Open(cfg.SQLitePath + "?_foreign_keys=on")
}

// ConnectWithRetry opens the database and pings it until it answers,
// giving up after cfg.DBMaxAttempts tries or when ctx ends.
func ConnectWithRetry(ctx context.Context, cfg *config.Config, log *slog.Logger) (*gorm.DB, error) {
	return connect(ctx, Dialector(cfg), cfg.DBMaxAttempts, defaultDelayBetweenTry, log)
}

func connect(ctx context.Context, dialector gorm.Dialector, attempts int, delay time.Duration, log *slog.Logger) (*gorm.DB, error) {
	var err error

	for attempt := 1; attempt <= attempts; attempt++ {
		var db *gorm.DB
		db, err = gorm.Open(dialector, &gorm.Config{
			TranslateError: true,
			Logger:         logger.Default.LogMode(logger.Warn),
		})
		if err == nil {
			sqlDB, err2 := db.DB()
			if err2 == nil {
				pingErr := sqlDB.PingContext(ctx)
				if pingErr == nil {
					return db, nil
				}
				err = pingErr
			} else {
				err = err2
			}
		}

		log.Warn("db not ready", "attempt", attempt, "max_attempts", attempts, "error", err)

		if attempt == attempts {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}

	return nil, fmt.Errorf("could not connect to db after %d attempts: %w", attempts, err)
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
