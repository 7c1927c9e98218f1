package service

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	ws, repo := newTestWordService(t)
	mustAdd(t, ws, "cat,dog")
	require.NoError(t, repo.RecordAttempt(ctx, "dog", false, "dgo"))
	require.NoError(t, ws.SetExampleSentence(ctx, "cat", "The cat sat."))

	backup := NewBackupService(repo, "memory", zaptest.NewLogger(t))
	path := filepath.Join(t.TempDir(), "backup.json")
	require.NoError(t, backup.Export(ctx, path))

	want, err := repo.Load(ctx)
	require.NoError(t, err)

	target := newTestRepo(t)
	restore := NewBackupService(target, "memory", zaptest.NewLogger(t))
	result, err := restore.Import(ctx, path, true)
	require.NoError(t, err)
	assert.Equal(t, ImportResult{Replaced: true, Words: 2}, result)

	got, err := target.Load(ctx)
	require.NoError(t, err)
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("restored document mismatch (-want +got):\n%s", diff)
	}
}

func TestExportFormat(t *testing.T) {
	ctx := context.Background()
	ws, repo := newTestWordService(t)
	mustAdd(t, ws, "cat")

	var buf bytes.Buffer
	require.NoError(t, NewBackupService(repo, "sql", zaptest.NewLogger(t)).ExportToWriter(ctx, &buf))

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(buf.Bytes(), &raw))
	assert.JSONEq(t, `"1.0"`, string(raw["version"]))
	assert.JSONEq(t, `"sql"`, string(raw["storage_backend"]))
	assert.Contains(t, string(raw["document"]), `"allWords"`)
}

func TestImportMerge(t *testing.T) {
	ctx := context.Background()
	ws, repo := newTestWordService(t)
	mustAdd(t, ws, "cat")
	require.NoError(t, repo.RecordAttempt(ctx, "cat", true, "cat"))

	input := `{"version":"1.0","document":{"allWords":["cat","owl"],"misspelledWords":["owl"],"wordHistory":{"cat":{"correct":0,"incorrect":9,"mistakes":[],"exampleSentence":""},"owl":{"correct":0,"incorrect":1,"mistakes":["oul"],"exampleSentence":""}}}}`
	result, err := NewBackupService(repo, "memory", zaptest.NewLogger(t)).ImportFromReader(ctx, strings.NewReader(input), false)
	require.NoError(t, err)
	assert.Equal(t, ImportResult{Words: 1}, result)

	doc, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "owl"}, doc.AllWords)
	assert.Equal(t, 1, doc.WordHistory["cat"].Correct, "existing history is kept")
	assert.Equal(t, 0, doc.WordHistory["cat"].Incorrect)
	assert.Equal(t, []string{"owl"}, doc.MisspelledWords)
}

func TestImportReplaceCanonicalizesWords(t *testing.T) {
	ctx := context.Background()
	ws, repo := newTestWordService(t)

	input := `{"version":"1.0","document":{"allWords":["Cat","cat"],"misspelledWords":["Cat","dog"],"wordHistory":{"Cat":{"correct":0,"incorrect":1,"mistakes":["kat"],"exampleSentence":""}}}}`
	result, err := NewBackupService(repo, "memory", zaptest.NewLogger(t)).ImportFromReader(ctx, strings.NewReader(input), true)
	require.NoError(t, err)
	assert.Equal(t, ImportResult{Replaced: true, Words: 1}, result)

	doc, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"cat"}, doc.AllWords)
	assert.Equal(t, []string{"cat"}, doc.MisspelledWords)
	assert.Equal(t, []string{"kat"}, doc.WordHistory["cat"].Mistakes)

	require.NoError(t, ws.Delete(ctx, "Cat"))
	doc, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, doc.AllWords)
	assert.Empty(t, doc.MisspelledWords)
	assert.Empty(t, doc.WordHistory)
}

func TestImportRejectsBadInput(t *testing.T) {
	ctx := context.Background()
	backup := NewBackupService(newTestRepo(t), "memory", zaptest.NewLogger(t))

	_, err := backup.ImportFromReader(ctx, strings.NewReader("not json"), true)
	assert.Error(t, err)

	_, err = backup.ImportFromReader(ctx, strings.NewReader(`{"version":"1.0"}`), true)
	assert.ErrorContains(t, err, "no word store document")
}
