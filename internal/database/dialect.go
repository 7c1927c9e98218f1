package database

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/pressly/goose/v3"
)

// Dialect defines the interface for database-specific operations
type Dialect interface {
	// DriverName returns the driver name for sql.Open
	DriverName() string

	// DSN returns the data source name for the connection
	DSN(config DialectConfig) string

	// PlaceholderFormat returns the bind parameter style (? or $1)
	PlaceholderFormat() sq.PlaceholderFormat

	// ConfigureConnection applies any database-specific connection settings
	ConfigureConnection(db *sql.DB) error

	// MigrationsSubdir returns the subdirectory name for migrations (e.g., "sqlite", "postgres")
	MigrationsSubdir() string

	// GooseDialect returns the dialect goose uses to track applied migrations
	GooseDialect() goose.Dialect

	// UpsertDocumentSuffix returns the clause that turns a documents INSERT into an upsert
	UpsertDocumentSuffix() string
}

// DialectConfig holds configuration for database connection
type DialectConfig struct {
	// For SQLite
	Path string

	// For PostgreSQL/MySQL
	URL string
}
