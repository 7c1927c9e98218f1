// Package practice runs a single spelling practice session over a shuffled word list.
package practice

import (
	"context"
	"errors"
	"math/rand/v2"
	"slices"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"spellingtrainer/internal/compare"
	"spellingtrainer/internal/models"
	"spellingtrainer/internal/validation"
)

// DefaultAdvanceDelay is how long positive feedback stays up before the next word
const DefaultAdvanceDelay = 1500 * time.Millisecond

var (
	ErrEmptyWordList     = errors.New("no words to practice")
	ErrEmptyAnswer       = errors.New("answer must not be empty")
	ErrInputLocked       = errors.New("input is locked until the next word")
	ErrInvalidTransition = errors.New("action not allowed in the current state")
	ErrSessionComplete   = errors.New("session is complete")
	ErrNoExampleSentence = errors.New("word has no example sentence")
)

// Store is the part of the word store a session reads and commits attempts to
type Store interface {
	Load(ctx context.Context) (*models.WordStoreDocument, error)
	RecordAttempt(ctx context.Context, word string, wasCorrect bool, typed string) error
}

// Speaker pronounces text without blocking the caller
type Speaker interface {
	Speak(text string)
	Stop()
}

// Options tune a session
type Options struct {
	// AdvanceDelay after a correct answer; zero means DefaultAdvanceDelay
	AdvanceDelay time.Duration
	Logger       *zap.Logger
	// Rand drives the shuffle; nil uses the global source
	Rand *rand.Rand
}

// Feedback describes how a submitted answer was scored
type Feedback struct {
	Correct    bool                    `json:"correct"`
	Word       string                  `json:"word"`
	Input      string                  `json:"input"`
	Comparison []models.CharComparison `json:"comparison,omitempty"`
	// Saved is false when the attempt was scored but could not be written to the store
	Saved bool `json:"saved"`
}

// Session is one pass over a shuffled word list.
// It is safe for concurrent use.
type Session struct {
	mu sync.Mutex

	ctx    context.Context
	cancel context.CancelFunc

	store   Store
	speaker Speaker
	logger  *zap.Logger
	delay   time.Duration

	queue           []string
	position        int
	tally           models.Tally
	missed          []string
	state           State
	exampleSentence string

	timer      *time.Timer
	generation uint64
	closed     bool
}

// New shuffles words and presents the first one.
// Blank entries are dropped and words are normalized before practice.
func New(ctx context.Context, words []string, store Store, speaker Speaker, opts Options) (*Session, error) {
	queue := make([]string, 0, len(words))
	for _, w := range words {
		if w = models.NormalizeWord(w); w != "" {
			queue = append(queue, w)
		}
	}
	if len(queue) == 0 {
		return nil, ErrEmptyWordList
	}

	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.AdvanceDelay <= 0 {
		opts.AdvanceDelay = DefaultAdvanceDelay
	}

	// the session outlives the request that started it
	sessionCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))

	s := &Session{
		ctx:     sessionCtx,
		cancel:  cancel,
		store:   store,
		speaker: speaker,
		logger:  opts.Logger,
		delay:   opts.AdvanceDelay,
		queue:   Shuffle(queue, opts.Rand),
		missed:  []string{},
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.presentLocked()

	return s, nil
}

// State returns the current state
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Submit scores an answer for the presented word and commits the attempt.
// The store is written after the session lock is released.
func (s *Session) Submit(input string) (Feedback, error) {
	fb, err := s.score(input)
	if err != nil {
		return Feedback{}, err
	}

	fb.Saved = true
	if err := s.store.RecordAttempt(s.ctx, fb.Word, fb.Correct, fb.Input); err != nil {
		fb.Saved = false
		s.logger.Error("Failed to save attempt",
			zap.String("word", fb.Word),
			zap.Bool("correct", fb.Correct),
			zap.Error(err))
	}

	return fb, nil
}

func (s *Session) score(input string) (Feedback, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	presenting, ok := s.state.(Presenting)
	if !ok {
		return Feedback{}, s.transitionError()
	}

	typed := models.NormalizeWord(input)
	if typed == "" {
		return Feedback{}, ErrEmptyAnswer
	}
	if err := validation.ValidateAnswer(typed); err != nil {
		return Feedback{}, err
	}

	word := presenting.Word
	comparison := compare.Compare(typed, word)
	fb := Feedback{Word: word, Input: typed, Correct: compare.IsExact(comparison)}

	if fb.Correct {
		s.tally.Correct++
		s.state = Correct{Word: word}
		s.scheduleAdvanceLocked()
		return fb, nil
	}

	s.tally.Incorrect++
	if !slices.Contains(s.missed, word) {
		s.missed = append(s.missed, word)
	}
	fb.Comparison = comparison
	s.state = Incorrect{Word: word, Input: typed, Comparison: comparison}
	return fb, nil
}

// Next moves on after an incorrect answer
func (s *Session) Next() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.state.(Incorrect); !ok {
		return s.transitionError()
	}
	s.advanceLocked()
	return nil
}

// Skip moves to the next word without scoring the current one
func (s *Session) Skip() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.state.(Presenting); !ok {
		return s.transitionError()
	}
	s.advanceLocked()
	return nil
}

// Replay speaks the current word again
func (s *Session) Replay() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	word := currentWord(s.state)
	if word == "" {
		return ErrSessionComplete
	}
	s.speaker.Speak(word)
	return nil
}

// ReplayExample speaks the example sentence of the current word
func (s *Session) ReplayExample() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.state.(Complete); ok {
		return ErrSessionComplete
	}
	if s.exampleSentence == "" {
		return ErrNoExampleSentence
	}
	s.speaker.Speak(s.exampleSentence)
	return nil
}

// End finishes the session early with the current tally.
// Calling End on a finished session returns the same result.
func (s *Session) End() models.SessionResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	if done, ok := s.state.(Complete); ok {
		return done.Result
	}
	s.completeLocked()
	return s.state.(Complete).Result
}

// Close stops any pending advance and silences the speaker
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	s.stopTimerLocked()
	s.cancel()
	s.speaker.Stop()
}

func (s *Session) transitionError() error {
	switch s.state.(type) {
	case Complete:
		return ErrSessionComplete
	case Correct:
		return ErrInputLocked
	default:
		return ErrInvalidTransition
	}
}

// presentLocked shows the word at the current position
func (s *Session) presentLocked() {
	word := s.queue[s.position]
	s.exampleSentence = s.lookupSentence(word)
	s.state = Presenting{Word: word}
	s.speaker.Speak(word)
}

func (s *Session) advanceLocked() {
	s.stopTimerLocked()
	s.position++
	if s.position >= len(s.queue) {
		s.completeLocked()
		return
	}
	s.presentLocked()
}

func (s *Session) completeLocked() {
	s.stopTimerLocked()
	s.exampleSentence = ""
	s.state = Complete{Result: models.SessionResult{
		Correct:     s.tally.Correct,
		Incorrect:   s.tally.Incorrect,
		MissedWords: slices.Clone(s.missed),
	}}
	s.speaker.Stop()
}

// scheduleAdvanceLocked arms the auto-advance. A timer that fires after the
// session moved on sees a newer generation and does nothing.
func (s *Session) scheduleAdvanceLocked() {
	s.stopTimerLocked()
	gen := s.generation
	s.timer = time.AfterFunc(s.delay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		if s.closed || gen != s.generation {
			return
		}
		if _, ok := s.state.(Correct); !ok {
			return
		}
		s.advanceLocked()
	})
}

func (s *Session) stopTimerLocked() {
	s.generation++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// lookupSentence reads the example sentence from a fresh copy of the store
// so edits made during the session are picked up. It runs under the session
// lock, so a slow store delays View until the next word is shown.
func (s *Session) lookupSentence(word string) string {
	doc, err := s.store.Load(s.ctx)
	if err != nil {
		s.logger.Warn("Failed to load example sentence", zap.String("word", word), zap.Error(err))
		return ""
	}
	return strings.TrimSpace(doc.ExampleSentence(word))
}
