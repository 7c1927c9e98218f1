package practice

import (
	"spellingtrainer/internal/models"
	"spellingtrainer/internal/results"
)

// View is the client-facing snapshot of a session.
// The word being presented is withheld until it has been answered.
type View struct {
	Status             string                  `json:"status"`
	Position           int                     `json:"position"`
	Total              int                     `json:"total"`
	Tally              models.Tally            `json:"tally"`
	HasExampleSentence bool                    `json:"hasExampleSentence"`
	Word               string                  `json:"word,omitempty"`
	Input              string                  `json:"input,omitempty"`
	Comparison         []models.CharComparison `json:"comparison,omitempty"`
	Summary            *results.Summary        `json:"summary,omitempty"`
}

// View returns a snapshot of the session
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := View{
		Status:             s.state.Name(),
		Position:           min(s.position+1, len(s.queue)),
		Total:              len(s.queue),
		Tally:              s.tally,
		HasExampleSentence: s.exampleSentence != "",
	}

	switch st := s.state.(type) {
	case Correct:
		v.Word = st.Word
	case Incorrect:
		v.Word = st.Word
		v.Input = st.Input
		v.Comparison = st.Comparison
	case Complete:
		summary := results.FromSession(st.Result)
		v.Summary = &summary
	}
	return v
}
