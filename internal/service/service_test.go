package service

import (
	"context"
	"testing"

	"go.uber.org/zap/zaptest"

	"spellingtrainer/internal/repository"
	"spellingtrainer/internal/storage"
)

const testUploadMaxSize = 1024

func newTestRepo(t *testing.T) *repository.WordRepository {
	t.Helper()
	return repository.NewWordRepository(storage.NewMemoryStore(), storage.DefaultKey, zaptest.NewLogger(t))
}

func newTestWordService(t *testing.T) (*WordService, *repository.WordRepository) {
	t.Helper()
	repo := newTestRepo(t)
	return NewWordService(repo, testUploadMaxSize, zaptest.NewLogger(t)), repo
}

func mustAdd(t *testing.T, s *WordService, text string) {
	t.Helper()
	if _, err := s.AddText(context.Background(), text, ""); err != nil {
		t.Fatalf("AddText(%q) failed: %v", text, err)
	}
}
