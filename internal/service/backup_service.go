package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"spellingtrainer/internal/models"
	"spellingtrainer/internal/repository"
)

const backupVersion = "1.0"

// BackupData represents the complete word store backup structure
type BackupData struct {
	Version        string                    `json:"version"`
	ExportedAt     time.Time                 `json:"exported_at"`
	StorageBackend string                    `json:"storage_backend"`
	Document       *models.WordStoreDocument `json:"document"`
}

// ImportResult reports what an import changed
type ImportResult struct {
	Replaced bool `json:"replaced"`
	Words    int  `json:"words"`
}

// BackupService handles word store backup and restore operations
type BackupService struct {
	repo    *repository.WordRepository
	backend string
	logger  *zap.Logger
}

// NewBackupService creates a new backup service
func NewBackupService(repo *repository.WordRepository, backend string, logger *zap.Logger) *BackupService {
	return &BackupService{repo: repo, backend: backend, logger: logger}
}

// Export writes a backup of the word store to a file
func (s *BackupService) Export(ctx context.Context, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if err := s.ExportToWriter(ctx, file); err != nil {
		return err
	}

	s.logger.Info("Word store exported", zap.String("path", outputPath))
	return file.Close()
}

// ExportToWriter writes a backup of the word store to w
func (s *BackupService) ExportToWriter(ctx context.Context, w io.Writer) error {
	doc, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to export words: %w", err)
	}

	backup := &BackupData{
		Version:        backupVersion,
		ExportedAt:     time.Now().UTC(),
		StorageBackend: s.backend,
		Document:       doc,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(backup); err != nil {
		return fmt.Errorf("failed to encode backup: %w", err)
	}
	return nil
}

// Import restores the word store from a backup file.
// With replace the store is overwritten, otherwise missing words are merged in.
func (s *BackupService) Import(ctx context.Context, inputPath string, replace bool) (ImportResult, error) {
	file, err := os.Open(inputPath)
	if err != nil {
		return ImportResult{}, fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	return s.ImportFromReader(ctx, file, replace)
}

// ImportFromReader restores the word store from a backup reader
func (s *BackupService) ImportFromReader(ctx context.Context, reader io.Reader, replace bool) (ImportResult, error) {
	var backup BackupData
	if err := json.NewDecoder(reader).Decode(&backup); err != nil {
		return ImportResult{}, fmt.Errorf("failed to decode backup: %w", err)
	}
	if backup.Document == nil {
		return ImportResult{}, errors.New("backup contains no word store document")
	}
	doc := backup.Document.Canonical()

	s.logger.Info("Importing backup",
		zap.String("version", backup.Version),
		zap.Time("exported_at", backup.ExportedAt),
		zap.Bool("replace", replace))

	if replace {
		if err := s.repo.Replace(ctx, doc); err != nil {
			return ImportResult{}, fmt.Errorf("failed to import words: %w", err)
		}
		return ImportResult{Replaced: true, Words: len(doc.AllWords)}, nil
	}

	added, err := s.repo.Merge(ctx, doc)
	if err != nil {
		return ImportResult{}, fmt.Errorf("failed to import words: %w", err)
	}
	return ImportResult{Words: added}, nil
}
