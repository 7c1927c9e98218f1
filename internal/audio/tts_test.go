package audio

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestTTS(t *testing.T, handler http.HandlerFunc) (*TTSService, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	tts := NewTTSService(t.TempDir(), srv.URL, "en")
	t.Cleanup(tts.client.CloseIdleConnections)
	return tts, srv
}

func TestFilenameHidesText(t *testing.T) {
	name := Filename("necessary")

	assert.True(t, strings.HasPrefix(name, "speech_"))
	assert.True(t, strings.HasSuffix(name, ".mp3"))
	assert.NotContains(t, name, "necessary")
	assert.Equal(t, name, Filename("  Necessary "))
	assert.NotEqual(t, name, Filename("necessery"))
}

func TestGenerateAudioFile(t *testing.T) {
	var hits atomic.Int32
	tts, _ := newTestTTS(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Equal(t, "cat", r.URL.Query().Get("q"))
		assert.Equal(t, "en", r.URL.Query().Get("tl"))
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		w.Write([]byte("mp3-bytes"))
	})

	name, err := tts.GenerateAudioFile(context.Background(), "cat")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(tts.AudioDir(), name))
	require.NoError(t, err)
	assert.Equal(t, "mp3-bytes", string(data))

	// cached on the second call
	again, err := tts.GenerateAudioFile(context.Background(), "cat")
	require.NoError(t, err)
	assert.Equal(t, name, again)
	assert.Equal(t, int32(1), hits.Load())
}

func TestGenerateAudioFileErrors(t *testing.T) {
	tts, _ := newTestTTS(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := tts.GenerateAudioFile(context.Background(), "cat")
	assert.ErrorContains(t, err, "unexpected status code: 429")

	_, err = tts.GenerateAudioFile(context.Background(), "   ")
	assert.Error(t, err)

	files, err := tts.GetAllAudioFiles()
	require.NoError(t, err)
	assert.Empty(t, files, "failed downloads must not leave files behind")
}

func TestCleanupAudioFiles(t *testing.T) {
	tts, _ := newTestTTS(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("x"))
	})

	for _, word := range []string{"cat", "dog"} {
		_, err := tts.GenerateAudioFile(context.Background(), word)
		require.NoError(t, err)
	}

	removed, err := tts.CleanupAudioFiles()
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	files, err := tts.GetAllAudioFiles()
	require.NoError(t, err)
	assert.Empty(t, files)
}
