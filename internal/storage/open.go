package storage

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"spellingtrainer/internal/config"
	"spellingtrainer/internal/database"
)

// Open creates the document store selected by the configuration.
// SQL backends are migrated before use.
func Open(ctx context.Context, cfg *config.Config, logger *zap.Logger) (DocumentStore, error) {
	switch strings.ToLower(cfg.StorageBackend) {
	case config.BackendSQL, "":
		db, err := database.InitializeWithType(cfg.DatabaseType, cfg.DatabasePath, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := db.RunMigrations(ctx, logger); err != nil {
			db.Close()
			return nil, err
		}
		logger.Info("Database connection established", zap.String("type", db.Dialect.DriverName()))
		return NewSQLStore(db), nil

	case config.BackendRedis:
		store, err := NewRedisStore(ctx, cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		logger.Info("Redis connection established")
		return store, nil

	case config.BackendMemory:
		logger.Warn("Using in-memory storage; words will not survive a restart")
		return NewMemoryStore(), nil

	default:
		return nil, fmt.Errorf("unsupported storage backend: %s", cfg.StorageBackend)
	}
}
