// Package audio turns words and sentences into spoken mp3 files.
package audio

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultBaseURL is the Google Translate speech endpoint
const DefaultBaseURL = "https://translate.google.com/translate_tts"

const ttsRequestTimeout = 10 * time.Second

// filenameSpace namespaces the name-based UUIDs used for audio filenames
var filenameSpace = uuid.MustParse("6f1c2a7e-3b0d-4c55-9a8e-2d7b5f0e9c41")

// TTSService provides text-to-speech functionality
type TTSService struct {
	audioDir string
	baseURL  string
	language string
	client   *http.Client
}

// NewTTSService creates a new TTS service writing into audioDir
func NewTTSService(audioDir, baseURL, language string) *TTSService {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if language == "" {
		language = "en"
	}
	return &TTSService{
		audioDir: audioDir,
		baseURL:  baseURL,
		language: language,
		client:   &http.Client{Timeout: ttsRequestTimeout},
	}
}

// AudioDir returns the directory audio files are written to
func (s *TTSService) AudioDir() string {
	return s.audioDir
}

// Filename returns the cache filename for text. The text itself never
// appears in the name so a served URL does not give the word away.
func Filename(text string) string {
	key := strings.ToLower(strings.TrimSpace(text))
	return "speech_" + uuid.NewSHA1(filenameSpace, []byte(key)).String() + ".mp3"
}

// GenerateAudioFile converts text to speech and saves it as MP3.
// Returns the filename (not full path) on success; existing files are reused.
func (s *TTSService) GenerateAudioFile(ctx context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("no text to speak")
	}

	filename := Filename(text)
	path := filepath.Join(s.audioDir, filename)

	if _, err := os.Stat(path); err == nil {
		return filename, nil
	}

	if err := os.MkdirAll(s.audioDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create audio directory: %w", err)
	}

	if err := s.generateUsingGoogleTTS(ctx, text, path); err != nil {
		return "", fmt.Errorf("failed to generate audio: %w", err)
	}

	return filename, nil
}

// generateUsingGoogleTTS downloads speech for text into outputPath.
// The file is written under a temporary name and renamed once complete.
func (s *TTSService) generateUsingGoogleTTS(ctx context.Context, text, outputPath string) error {
	params := url.Values{}
	params.Set("ie", "UTF-8")
	params.Set("q", text)
	params.Set("tl", s.language)
	params.Set("client", "tw-ob")
	params.Set("textlen", strconv.Itoa(len(text)))

	fullURL := s.baseURL + "?" + params.Encode()

	ctx, cancel := context.WithTimeout(ctx, ttsRequestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	// Google rejects requests without a browser user agent
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch audio: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	tmp, err := os.CreateTemp(s.audioDir, "speech-*.part")
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write audio file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write audio file: %w", err)
	}

	return os.Rename(tmp.Name(), outputPath)
}

// DeleteAudioFile removes an audio file
func (s *TTSService) DeleteAudioFile(filename string) error {
	path := filepath.Join(s.audioDir, filepath.Base(filename))

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil // Already deleted
	}

	return os.Remove(path)
}

// GetAllAudioFiles returns a list of all MP3 files in the audio directory
func (s *TTSService) GetAllAudioFiles() ([]string, error) {
	files, err := os.ReadDir(s.audioDir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read audio directory: %w", err)
	}

	var audioFiles []string
	for _, file := range files {
		if !file.IsDir() && filepath.Ext(file.Name()) == ".mp3" {
			audioFiles = append(audioFiles, file.Name())
		}
	}

	return audioFiles, nil
}

// CleanupAudioFiles removes every generated mp3 and returns how many were removed
func (s *TTSService) CleanupAudioFiles() (int, error) {
	files, err := s.GetAllAudioFiles()
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, name := range files {
		if err := s.DeleteAudioFile(name); err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}
