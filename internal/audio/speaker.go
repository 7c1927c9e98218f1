package audio

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Generator produces an audio file for text and returns its filename
type Generator interface {
	GenerateAudioFile(ctx context.Context, text string) (string, error)
}

// Speaker generates speech in the background. Speaking again interrupts
// any generation still in flight; the client fetches the file named by Current.
type Speaker struct {
	gen    Generator
	logger *zap.Logger

	mu      sync.Mutex
	cancel  context.CancelFunc
	current string
	wg      sync.WaitGroup
}

// NewSpeaker creates a speaker over a generator
func NewSpeaker(gen Generator, logger *zap.Logger) *Speaker {
	return &Speaker{gen: gen, logger: logger}
}

// Speak starts generating text and returns immediately
func (s *Speaker) Speak(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopLocked()

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		filename, err := s.gen.GenerateAudioFile(ctx, text)
		if err != nil {
			if ctx.Err() == nil {
				s.logger.Warn("Speech generation failed", zap.Error(err))
			}
			return
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		if ctx.Err() == nil {
			s.current = filename
		}
	}()
}

// Stop cancels any in-flight generation and forgets the current audio
func (s *Speaker) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
}

// Current returns the filename of the most recently generated speech, or ""
func (s *Speaker) Current() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Wait blocks until background generations have finished
func (s *Speaker) Wait() {
	s.wg.Wait()
}

func (s *Speaker) stopLocked() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.current = ""
}

// NopSpeaker is used when speech is disabled
type NopSpeaker struct{}

func (NopSpeaker) Speak(string)    {}
func (NopSpeaker) Stop()           {}
func (NopSpeaker) Current() string { return "" }
