package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"

	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

//go:embed migrations
var migrationsFS embed.FS

// RunMigrations applies every pending migration for the connection's dialect
func (db *DB) RunMigrations(ctx context.Context, logger *zap.Logger) error {
	fsys, err := fs.Sub(migrationsFS, path.Join("migrations", db.Dialect.MigrationsSubdir()))
	if err != nil {
		return fmt.Errorf("failed to open migrations: %w", err)
	}

	provider, err := goose.NewProvider(db.Dialect.GooseDialect(), db.DB, fsys)
	if err != nil {
		return fmt.Errorf("failed to create migration provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	for _, r := range results {
		logger.Info("Migration completed",
			zap.String("file", path.Base(r.Source.Path)),
			zap.Duration("duration", r.Duration))
	}

	return nil
}
