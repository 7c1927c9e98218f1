package practice

import "spellingtrainer/internal/models"

// State is the current step of a practice session.
// It is one of Presenting, Correct, Incorrect or Complete.
type State interface {
	Name() string
	isState()
}

// Presenting waits for the user to type Word
type Presenting struct {
	Word string
}

// Correct shows positive feedback until the auto-advance fires.
// Input is locked in this state.
type Correct struct {
	Word string
}

// Incorrect shows the comparison until the user asks for the next word
type Incorrect struct {
	Word       string
	Input      string
	Comparison []models.CharComparison
}

// Complete is terminal
type Complete struct {
	Result models.SessionResult
}

const (
	StatusPresenting = "presenting"
	StatusCorrect    = "correct"
	StatusIncorrect  = "incorrect"
	StatusComplete   = "complete"
)

func (Presenting) Name() string { return StatusPresenting }
func (Correct) Name() string    { return StatusCorrect }
func (Incorrect) Name() string  { return StatusIncorrect }
func (Complete) Name() string   { return StatusComplete }

func (Presenting) isState() {}
func (Correct) isState()    {}
func (Incorrect) isState()  {}
func (Complete) isState()   {}

// currentWord returns the word a state refers to, or "" when complete
func currentWord(s State) string {
	switch st := s.(type) {
	case Presenting:
		return st.Word
	case Correct:
		return st.Word
	case Incorrect:
		return st.Word
	}
	return ""
}
