package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"

	"spellingtrainer/internal/audio"
	"spellingtrainer/internal/models"
	"spellingtrainer/internal/practice"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestPracticeService(t *testing.T, words string) (*PracticeService, *WordService) {
	t.Helper()
	ws, repo := newTestWordService(t)
	if words != "" {
		mustAdd(t, ws, words)
	}
	ps := NewPracticeService(repo, audio.NopSpeaker{}, practice.Options{
		AdvanceDelay: time.Hour,
		Logger:       zaptest.NewLogger(t),
	})
	t.Cleanup(ps.Close)
	return ps, ws
}

// answerWrong misses every remaining word of the session
func answerWrong(t *testing.T, ps *PracticeService, id string) {
	t.Helper()
	for {
		view, err := ps.Get(id)
		require.NoError(t, err)
		if view.Status == practice.StatusComplete {
			return
		}
		_, _, err = ps.Submit(id, "zzz")
		require.NoError(t, err)
		_, err = ps.Next(id)
		require.NoError(t, err)
	}
}

func TestStartModes(t *testing.T) {
	ps, ws := newTestPracticeService(t, "cat,dog,owl")
	ctx := context.Background()

	view, err := ps.Start(ctx, models.PracticeAll, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, view.ID)
	assert.Equal(t, 3, view.Total)
	assert.Equal(t, practice.StatusPresenting, view.Status)

	_, err = ps.Start(ctx, models.PracticeMisspelled, nil)
	assert.ErrorIs(t, err, ErrNoWords)

	view, err = ps.Start(ctx, models.PracticeCustom, []string{"cat", "owl"})
	require.NoError(t, err)
	assert.Equal(t, 2, view.Total)

	_, err = ps.Start(ctx, "weird", nil)
	assert.ErrorIs(t, err, ErrUnknownMode)

	require.NoError(t, ws.Clear(ctx))
	_, err = ps.Start(ctx, models.PracticeAll, nil)
	assert.ErrorIs(t, err, ErrNoWords)
}

func TestStartingReplacesPreviousSession(t *testing.T) {
	ps, _ := newTestPracticeService(t, "cat")
	ctx := context.Background()

	first, err := ps.Start(ctx, models.PracticeAll, nil)
	require.NoError(t, err)
	second, err := ps.Start(ctx, models.PracticeAll, nil)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	_, err = ps.Get(first.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMisspelledPracticeAndRetry(t *testing.T) {
	ps, ws := newTestPracticeService(t, "cat,dog")
	ctx := context.Background()

	view, err := ps.Start(ctx, models.PracticeAll, nil)
	require.NoError(t, err)

	_, err = ps.RetryMissed(ctx, view.ID)
	assert.ErrorIs(t, err, practice.ErrInvalidTransition)

	answerWrong(t, ps, view.ID)

	summary, err := ps.End(view.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Incorrect)
	assert.Equal(t, 0, summary.Accuracy)
	assert.ElementsMatch(t, []string{"cat", "dog"}, summary.MissedWords)

	stats, err := ws.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.MisspelledCount)

	retry, err := ps.RetryMissed(ctx, view.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, retry.Total)

	misspelled, err := ps.Start(ctx, models.PracticeMisspelled, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, misspelled.Total)
}

func TestSubmitCorrectClearsMisspelled(t *testing.T) {
	ps, ws := newTestPracticeService(t, "cat")
	ctx := context.Background()

	view, err := ps.Start(ctx, models.PracticeAll, nil)
	require.NoError(t, err)
	answerWrong(t, ps, view.ID)

	view, err = ps.Start(ctx, models.PracticeMisspelled, nil)
	require.NoError(t, err)

	fb, after, err := ps.Submit(view.ID, "CAT")
	require.NoError(t, err)
	assert.True(t, fb.Correct)
	assert.True(t, fb.Saved)
	assert.Equal(t, practice.StatusCorrect, after.Status)
	assert.Equal(t, "cat", after.Word)

	_, err = ps.Skip(view.ID)
	assert.ErrorIs(t, err, practice.ErrInputLocked)

	stats, err := ws.Stats(ctx)
	require.NoError(t, err)
	assert.Zero(t, stats.MisspelledCount)
}

func TestUnknownSessionID(t *testing.T) {
	ps, _ := newTestPracticeService(t, "cat")

	_, err := ps.Get("nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, _, err = ps.Submit("nope", "cat")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = ps.End("nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestReplayActions(t *testing.T) {
	ps, ws := newTestPracticeService(t, "cat")
	ctx := context.Background()

	view, err := ps.Start(ctx, models.PracticeAll, nil)
	require.NoError(t, err)

	_, err = ps.Replay(view.ID)
	require.NoError(t, err)
	_, err = ps.ReplayExample(view.ID)
	assert.ErrorIs(t, err, practice.ErrNoExampleSentence)

	require.NoError(t, ws.SetExampleSentence(ctx, "cat", "The cat sat."))
	view, err = ps.Start(ctx, models.PracticeAll, nil)
	require.NoError(t, err)
	assert.True(t, view.HasExampleSentence)
	_, err = ps.ReplayExample(view.ID)
	require.NoError(t, err)
}
