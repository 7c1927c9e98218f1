package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"spellingtrainer/internal/database"
)

const documentsTable = "documents"

// SQLStore keeps documents in the documents table of a SQL database
type SQLStore struct {
	db *database.DB
}

// NewSQLStore creates a store over a migrated database connection
func NewSQLStore(db *database.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var body string
	err := s.db.Builder().
		Select("body").
		From(documentsTable).
		Where(sq.Eq{"doc_key": key}).
		QueryRowContext(ctx).
		Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read document %s: %w", key, err)
	}
	return []byte(body), true, nil
}

func (s *SQLStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.Builder().
		Insert(documentsTable).
		Columns("doc_key", "body", "updated_at").
		Values(key, string(value), time.Now().UTC()).
		Suffix(s.db.Dialect.UpsertDocumentSuffix()).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to write document %s: %w", key, err)
	}
	return nil
}

func (s *SQLStore) Remove(ctx context.Context, key string) error {
	_, err := s.db.Builder().
		Delete(documentsTable).
		Where(sq.Eq{"doc_key": key}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete document %s: %w", key, err)
	}
	return nil
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}
