package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"spellingtrainer/internal/models"
	"spellingtrainer/internal/storage"
)

// ErrWordNotFound is returned when an operation names a word that is not in the store
var ErrWordNotFound = errors.New("word not found")

// WordRepository reads and writes the word store document.
// Every mutation loads the whole document, changes it and saves it back;
// the last save wins.
type WordRepository struct {
	store  storage.DocumentStore
	key    string
	logger *zap.Logger
}

// NewWordRepository creates a repository over the document saved under key
func NewWordRepository(store storage.DocumentStore, key string, logger *zap.Logger) *WordRepository {
	if key == "" {
		key = storage.DefaultKey
	}
	return &WordRepository{store: store, key: key, logger: logger}
}

// Load returns the stored document. A missing or undecodable document
// yields the empty default; only a backend failure is returned as an error.
func (r *WordRepository) Load(ctx context.Context) (*models.WordStoreDocument, error) {
	raw, ok, err := r.store.Get(ctx, r.key)
	if err != nil {
		return nil, fmt.Errorf("failed to load word store: %w", err)
	}
	if !ok || len(raw) == 0 {
		return models.NewWordStoreDocument(), nil
	}

	var doc models.WordStoreDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		r.logger.Warn("Word store document is corrupt, starting empty",
			zap.String("key", r.key),
			zap.Error(err))
		return models.NewWordStoreDocument(), nil
	}

	doc.Normalize()
	return &doc, nil
}

// Save overwrites the stored document
func (r *WordRepository) Save(ctx context.Context, doc *models.WordStoreDocument) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode word store: %w", err)
	}
	if err := r.store.Set(ctx, r.key, raw); err != nil {
		return fmt.Errorf("failed to save word store: %w", err)
	}
	return nil
}

// Clear removes the stored document
func (r *WordRepository) Clear(ctx context.Context) error {
	if err := r.store.Remove(ctx, r.key); err != nil {
		return fmt.Errorf("failed to clear word store: %w", err)
	}
	return nil
}

// update runs fn against the freshly loaded document and saves it if fn reports a change
func (r *WordRepository) update(ctx context.Context, fn func(doc *models.WordStoreDocument) (bool, error)) error {
	doc, err := r.Load(ctx)
	if err != nil {
		return err
	}

	changed, err := fn(doc)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}
	return r.Save(ctx, doc)
}

// AddWords adds every new word in order and returns how many were added.
// A non-empty exampleSentence is attached to the first word of the batch.
func (r *WordRepository) AddWords(ctx context.Context, words []string, exampleSentence string) (int, error) {
	added := 0
	err := r.update(ctx, func(doc *models.WordStoreDocument) (bool, error) {
		for _, word := range words {
			if doc.AddWord(word) {
				added++
			}
		}
		if exampleSentence != "" && len(words) > 0 && doc.SetExampleSentence(words[0], exampleSentence) {
			return true, nil
		}
		return added > 0, nil
	})
	if err != nil {
		return 0, err
	}
	return added, nil
}

// DeleteWord removes a word together with its history and misspelled flag
func (r *WordRepository) DeleteWord(ctx context.Context, word string) error {
	return r.update(ctx, func(doc *models.WordStoreDocument) (bool, error) {
		if !doc.DeleteWord(word) {
			return false, ErrWordNotFound
		}
		return true, nil
	})
}

// RecordAttempt commits one scored attempt
func (r *WordRepository) RecordAttempt(ctx context.Context, word string, wasCorrect bool, typed string) error {
	return r.update(ctx, func(doc *models.WordStoreDocument) (bool, error) {
		doc.RecordAttempt(word, wasCorrect, typed)
		return true, nil
	})
}

// SetExampleSentence replaces the example sentence of a known word
func (r *WordRepository) SetExampleSentence(ctx context.Context, word, sentence string) error {
	return r.update(ctx, func(doc *models.WordStoreDocument) (bool, error) {
		if !doc.SetExampleSentence(word, sentence) {
			return false, ErrWordNotFound
		}
		return true, nil
	})
}

// Replace overwrites the store with the canonical form of doc
func (r *WordRepository) Replace(ctx context.Context, doc *models.WordStoreDocument) error {
	return r.Save(ctx, doc.Canonical())
}

// Merge adds the words of other that the store does not know yet and returns how many were added
func (r *WordRepository) Merge(ctx context.Context, other *models.WordStoreDocument) (int, error) {
	added := 0
	err := r.update(ctx, func(doc *models.WordStoreDocument) (bool, error) {
		added = doc.Merge(other)
		return added > 0, nil
	})
	if err != nil {
		return 0, err
	}
	return added, nil
}
