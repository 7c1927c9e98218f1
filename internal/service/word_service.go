package service

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"go.uber.org/zap"

	"spellingtrainer/internal/ingest"
	"spellingtrainer/internal/models"
	"spellingtrainer/internal/repository"
	"spellingtrainer/internal/validation"
)

// AddResult reports how many words were found in the input, how many were new
// and how many were skipped as invalid
type AddResult struct {
	Parsed  int `json:"parsed"`
	Added   int `json:"added"`
	Skipped int `json:"skipped,omitempty"`
}

// WordService handles word management business logic
type WordService struct {
	repo          *repository.WordRepository
	uploadMaxSize int64
	logger        *zap.Logger
}

// NewWordService creates a new word service
func NewWordService(repo *repository.WordRepository, uploadMaxSize int64, logger *zap.Logger) *WordService {
	return &WordService{
		repo:          repo,
		uploadMaxSize: uploadMaxSize,
		logger:        logger,
	}
}

// AddText adds the words found in free text. A non-empty exampleSentence
// is attached to the first word.
func (s *WordService) AddText(ctx context.Context, text, exampleSentence string) (AddResult, error) {
	if err := validation.ValidateWordText(text); err != nil {
		return AddResult{}, err
	}
	if err := validation.ValidateSentence(exampleSentence); err != nil {
		return AddResult{}, err
	}
	return s.add(ctx, ingest.Parse(text), exampleSentence)
}

// ImportReader adds the words of an uploaded CSV or text file
func (s *WordService) ImportReader(ctx context.Context, r io.Reader) (AddResult, error) {
	words, err := ingest.ParseReader(r, s.uploadMaxSize)
	if err != nil {
		return AddResult{}, err
	}
	return s.add(ctx, words, "")
}

// ImportFile adds the words of a CSV or text file on disk
func (s *WordService) ImportFile(ctx context.Context, path string) (AddResult, error) {
	words, err := ingest.ParseFile(path, s.uploadMaxSize)
	if err != nil {
		return AddResult{}, err
	}
	return s.add(ctx, words, "")
}

func (s *WordService) add(ctx context.Context, words []string, exampleSentence string) (AddResult, error) {
	valid := make([]string, 0, len(words))
	for _, word := range words {
		if err := validation.ValidateWord(word); err != nil {
			s.logger.Debug("Skipping invalid word", zap.String("word", word), zap.Error(err))
			continue
		}
		valid = append(valid, word)
	}
	if len(valid) == 0 {
		return AddResult{}, ErrNoWords
	}

	added, err := s.repo.AddWords(ctx, valid, exampleSentence)
	if err != nil {
		return AddResult{}, fmt.Errorf("failed to add words: %w", err)
	}

	result := AddResult{Parsed: len(words), Added: added, Skipped: len(words) - len(valid)}
	s.logger.Info("Words added",
		zap.Int("parsed", result.Parsed),
		zap.Int("added", result.Added),
		zap.Int("skipped", result.Skipped))
	return result, nil
}

// Delete removes a word and its history
func (s *WordService) Delete(ctx context.Context, word string) error {
	if err := validation.ValidateWord(word); err != nil {
		return err
	}
	if err := s.repo.DeleteWord(ctx, word); err != nil {
		return err
	}
	s.logger.Info("Word deleted", zap.String("word", models.NormalizeWord(word)))
	return nil
}

// SetExampleSentence replaces the example sentence of a word; an empty sentence clears it
func (s *WordService) SetExampleSentence(ctx context.Context, word, sentence string) error {
	if err := validation.ValidateWord(word); err != nil {
		return err
	}
	if err := validation.ValidateSentence(sentence); err != nil {
		return err
	}
	return s.repo.SetExampleSentence(ctx, word, sentence)
}

// History lists the words whose text contains search, most-missed first
func (s *WordService) History(ctx context.Context, search string) ([]models.WordHistoryEntry, error) {
	doc, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	search = models.NormalizeWord(search)
	entries := make([]models.WordHistoryEntry, 0, len(doc.AllWords))
	for _, word := range doc.AllWords {
		if search != "" && !strings.Contains(word, search) {
			continue
		}
		entry := models.WordHistoryEntry{Word: word, Misspelled: doc.IsMisspelled(word)}
		if record, ok := doc.Record(word); ok {
			entry.Record = *record
		}
		entries = append(entries, entry)
	}

	slices.SortStableFunc(entries, func(a, b models.WordHistoryEntry) int {
		if c := cmp.Compare(b.Record.Incorrect, a.Record.Incorrect); c != 0 {
			return c
		}
		return cmp.Compare(a.Word, b.Word)
	})
	return entries, nil
}

// Stats returns the word counts shown on the home screen
func (s *WordService) Stats(ctx context.Context) (models.WordStats, error) {
	doc, err := s.repo.Load(ctx)
	if err != nil {
		return models.WordStats{}, err
	}
	return models.WordStats{
		TotalWords:      len(doc.AllWords),
		MisspelledCount: len(doc.MisspelledWords),
	}, nil
}

// Clear removes every word and all history
func (s *WordService) Clear(ctx context.Context) error {
	if err := s.repo.Clear(ctx); err != nil {
		return err
	}
	s.logger.Warn("All words cleared")
	return nil
}
