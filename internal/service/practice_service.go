package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"spellingtrainer/internal/models"
	"spellingtrainer/internal/practice"
	"spellingtrainer/internal/repository"
	"spellingtrainer/internal/results"
)

// Speaker is a practice speaker that can also name the last audio file it produced
type Speaker interface {
	practice.Speaker
	Current() string
}

// SessionView is a practice session snapshot addressed by its id
type SessionView struct {
	ID string `json:"id"`
	practice.View
	// Audio is the filename of the latest generated speech, if any
	Audio string `json:"audio,omitempty"`
}

// PracticeService owns the single active practice session
type PracticeService struct {
	repo    *repository.WordRepository
	speaker Speaker
	opts    practice.Options
	logger  *zap.Logger

	mu      sync.Mutex
	id      string
	session *practice.Session
}

// NewPracticeService creates a new practice service
func NewPracticeService(repo *repository.WordRepository, speaker Speaker, opts practice.Options) *PracticeService {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &PracticeService{
		repo:    repo,
		speaker: speaker,
		opts:    opts,
		logger:  opts.Logger,
	}
}

// Start begins a session over all words, the misspelled words, or the given words.
// Any previous session is closed.
func (s *PracticeService) Start(ctx context.Context, mode models.PracticeMode, words []string) (SessionView, error) {
	var list []string
	switch mode {
	case models.PracticeAll, models.PracticeMisspelled:
		doc, err := s.repo.Load(ctx)
		if err != nil {
			return SessionView{}, err
		}
		list = doc.AllWords
		if mode == models.PracticeMisspelled {
			list = doc.MisspelledWords
		}
	case models.PracticeCustom:
		list = words
	default:
		return SessionView{}, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}

	return s.start(ctx, string(mode), list)
}

func (s *PracticeService) start(ctx context.Context, mode string, words []string) (SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closeLocked()

	session, err := practice.New(ctx, words, s.repo, s.speaker, s.opts)
	if err != nil {
		if errors.Is(err, practice.ErrEmptyWordList) {
			return SessionView{}, ErrNoWords
		}
		return SessionView{}, err
	}

	s.id = uuid.NewString()
	s.session = session

	s.logger.Info("Practice session started",
		zap.String("session_id", s.id),
		zap.String("mode", mode),
		zap.Int("words", session.View().Total))

	return s.viewLocked(), nil
}

// Get returns the current snapshot of a session
func (s *PracticeService) Get(id string) (SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.lookupLocked(id); err != nil {
		return SessionView{}, err
	}
	return s.viewLocked(), nil
}

// Submit scores an answer
func (s *PracticeService) Submit(id, answer string) (practice.Feedback, SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.lookupLocked(id)
	if err != nil {
		return practice.Feedback{}, SessionView{}, err
	}

	fb, err := session.Submit(answer)
	if err != nil {
		return practice.Feedback{}, SessionView{}, err
	}
	return fb, s.viewLocked(), nil
}

// Next moves on after an incorrect answer
func (s *PracticeService) Next(id string) (SessionView, error) {
	return s.do(id, (*practice.Session).Next)
}

// Skip moves on without scoring
func (s *PracticeService) Skip(id string) (SessionView, error) {
	return s.do(id, (*practice.Session).Skip)
}

// Replay speaks the current word again
func (s *PracticeService) Replay(id string) (SessionView, error) {
	return s.do(id, (*practice.Session).Replay)
}

// ReplayExample speaks the example sentence of the current word
func (s *PracticeService) ReplayExample(id string) (SessionView, error) {
	return s.do(id, (*practice.Session).ReplayExample)
}

// End finishes a session and returns its summary
func (s *PracticeService) End(id string) (results.Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.lookupLocked(id)
	if err != nil {
		return results.Summary{}, err
	}

	summary := results.FromSession(session.End())
	s.logger.Info("Practice session ended",
		zap.String("session_id", id),
		zap.Int("correct", summary.Correct),
		zap.Int("incorrect", summary.Incorrect),
		zap.Int("accuracy", summary.Accuracy))
	return summary, nil
}

// RetryMissed starts a new session over the words missed in a finished session
func (s *PracticeService) RetryMissed(ctx context.Context, id string) (SessionView, error) {
	s.mu.Lock()
	session, err := s.lookupLocked(id)
	if err != nil {
		s.mu.Unlock()
		return SessionView{}, err
	}
	done, ok := session.State().(practice.Complete)
	s.mu.Unlock()

	if !ok {
		return SessionView{}, practice.ErrInvalidTransition
	}
	return s.start(ctx, "retry", done.Result.MissedWords)
}

// Close ends the active session, if any
func (s *PracticeService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closeLocked()
}

func (s *PracticeService) do(id string, fn func(*practice.Session) error) (SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.lookupLocked(id)
	if err != nil {
		return SessionView{}, err
	}
	if err := fn(session); err != nil {
		return SessionView{}, err
	}
	return s.viewLocked(), nil
}

func (s *PracticeService) lookupLocked(id string) (*practice.Session, error) {
	if s.session == nil || id != s.id {
		return nil, ErrSessionNotFound
	}
	return s.session, nil
}

func (s *PracticeService) viewLocked() SessionView {
	return SessionView{
		ID:    s.id,
		View:  s.session.View(),
		Audio: s.speaker.Current(),
	}
}

func (s *PracticeService) closeLocked() {
	if s.session != nil {
		s.session.Close()
		s.session = nil
		s.id = ""
	}
}
