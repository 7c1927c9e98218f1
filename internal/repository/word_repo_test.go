package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"spellingtrainer/internal/models"
	"spellingtrainer/internal/storage"
)

const testKey = "spellingTrainerData"

func newTestRepo(t *testing.T) (*WordRepository, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	return NewWordRepository(store, testKey, zaptest.NewLogger(t)), store
}

// failingStore fails every call
type failingStore struct{}

var errBackend = errors.New("backend down")

func (failingStore) Get(context.Context, string) ([]byte, bool, error) { return nil, false, errBackend }
func (failingStore) Set(context.Context, string, []byte) error         { return errBackend }
func (failingStore) Remove(context.Context, string) error              { return errBackend }
func (failingStore) Close() error                                      { return nil }

func TestLoadEmptyStore(t *testing.T) {
	repo, _ := newTestRepo(t)

	doc, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, doc.AllWords)
	assert.NotNil(t, doc.MisspelledWords)
	assert.NotNil(t, doc.WordHistory)
}

func TestLoadCorruptDocument(t *testing.T) {
	repo, store := newTestRepo(t)
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, testKey, []byte("{not json")))

	doc, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, doc.AllWords)
}

func TestLoadBackendError(t *testing.T) {
	repo := NewWordRepository(failingStore{}, testKey, zaptest.NewLogger(t))

	_, err := repo.Load(context.Background())
	assert.ErrorIs(t, err, errBackend)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	doc := models.NewWordStoreDocument()
	doc.AddWord("cat")
	doc.AddWord("house")
	doc.RecordAttempt("house", false, "hous")
	doc.SetExampleSentence("cat", "The cat sat.")

	require.NoError(t, repo.Save(ctx, doc))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	if diff := cmp.Diff(doc, loaded, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveUsesWireFormat(t *testing.T) {
	repo, store := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.AddWords(ctx, []string{"cat"}, "")
	require.NoError(t, err)

	raw, ok, err := store.Get(ctx, testKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t,
		`{"allWords":["cat"],"misspelledWords":[],"wordHistory":{"cat":{"correct":0,"incorrect":0,"mistakes":[],"exampleSentence":""}}}`,
		string(raw))
}

func TestSaveFailureIsReturned(t *testing.T) {
	repo := NewWordRepository(failingStore{}, testKey, zaptest.NewLogger(t))

	err := repo.Save(context.Background(), models.NewWordStoreDocument())
	assert.ErrorIs(t, err, errBackend)
}

func TestAddWords(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	added, err := repo.AddWords(ctx, []string{"cat", "dog", "cat"}, "The cat naps.")
	require.NoError(t, err)
	assert.Equal(t, 2, added)

	added, err = repo.AddWords(ctx, []string{"dog"}, "")
	require.NoError(t, err)
	assert.Equal(t, 0, added)

	doc, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "dog"}, doc.AllWords)
	assert.Equal(t, "The cat naps.", doc.ExampleSentence("cat"))
	assert.Empty(t, doc.ExampleSentence("dog"))
}

func TestDeleteWordAfterAttempts(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.AddWords(ctx, []string{"cat"}, "")
	require.NoError(t, err)
	require.NoError(t, repo.RecordAttempt(ctx, "cat", false, "kat"))

	require.NoError(t, repo.DeleteWord(ctx, "cat"))

	doc, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.NotContains(t, doc.AllWords, "cat")
	assert.NotContains(t, doc.MisspelledWords, "cat")
	assert.NotContains(t, doc.WordHistory, "cat")

	assert.ErrorIs(t, repo.DeleteWord(ctx, "cat"), ErrWordNotFound)
}

func TestSetExampleSentence(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.AddWords(ctx, []string{"cat"}, "")
	require.NoError(t, err)

	require.NoError(t, repo.SetExampleSentence(ctx, "cat", "A cat purrs."))
	assert.ErrorIs(t, repo.SetExampleSentence(ctx, "dog", "A dog barks."), ErrWordNotFound)

	doc, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "A cat purrs.", doc.ExampleSentence("cat"))
}

func TestReplaceAndMerge(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.AddWords(ctx, []string{"cat"}, "")
	require.NoError(t, err)

	other := models.NewWordStoreDocument()
	other.AddWord("cat")
	other.AddWord("dog")

	added, err := repo.Merge(ctx, other)
	require.NoError(t, err)
	assert.Equal(t, 1, added)

	replacement := models.NewWordStoreDocument()
	replacement.AddWord("owl")
	require.NoError(t, repo.Replace(ctx, replacement))

	doc, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"owl"}, doc.AllWords)
}

func TestClear(t *testing.T) {
	repo, store := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.AddWords(ctx, []string{"cat"}, "")
	require.NoError(t, err)
	require.NoError(t, repo.Clear(ctx))

	_, ok, err := store.Get(ctx, testKey)
	require.NoError(t, err)
	assert.False(t, ok)
}
