package results

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"spellingtrainer/internal/models"
)

func TestCalculateAccuracy(t *testing.T) {
	tests := []struct {
		name    string
		correct int
		total   int
		want    int
	}{
		{name: "no attempts", correct: 0, total: 0, want: 0},
		{name: "three of four", correct: 3, total: 4, want: 75},
		{name: "one of three rounds down", correct: 1, total: 3, want: 33},
		{name: "two of three rounds up", correct: 2, total: 3, want: 67},
		{name: "half rounds up", correct: 1, total: 8, want: 13},
		{name: "perfect", correct: 5, total: 5, want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateAccuracy(tt.correct, tt.total))
		})
	}
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name      string
		correct   int
		incorrect int
		missed    []string
		accuracy  int
		perfect   bool
	}{
		{name: "one right one wrong", correct: 1, incorrect: 1, missed: []string{"cat"}, accuracy: 50, perfect: false},
		{name: "all correct", correct: 3, incorrect: 0, accuracy: 100, perfect: true},
		{name: "ended before any attempt", correct: 0, incorrect: 0, accuracy: 0, perfect: false},
		{name: "all wrong", correct: 0, incorrect: 2, missed: []string{"a", "b"}, accuracy: 0, perfect: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Summarize(tt.correct, tt.incorrect, tt.missed)
			assert.Equal(t, tt.accuracy, s.Accuracy)
			assert.Equal(t, tt.perfect, s.IsPerfect)
			assert.Equal(t, tt.correct+tt.incorrect, s.Total)
			assert.NotNil(t, s.MissedWords)
		})
	}
}

func TestFromSession(t *testing.T) {
	s := FromSession(models.SessionResult{Correct: 1, Incorrect: 1, MissedWords: []string{"cat"}})
	assert.Equal(t, Summary{Correct: 1, Incorrect: 1, Total: 2, Accuracy: 50, MissedWords: []string{"cat"}}, s)
}
