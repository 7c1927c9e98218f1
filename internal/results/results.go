// Package results derives the summary shown after a practice session.
package results

import (
	"math"
	"slices"

	"spellingtrainer/internal/models"
)

// Summary is the result screen data for a finished session
type Summary struct {
	Correct     int      `json:"correct"`
	Incorrect   int      `json:"incorrect"`
	Total       int      `json:"total"`
	Accuracy    int      `json:"accuracy"`
	IsPerfect   bool     `json:"isPerfect"`
	MissedWords []string `json:"missedWords"`
}

// CalculateAccuracy returns the rounded percentage of correct answers, or 0 when total is 0
func CalculateAccuracy(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(correct) * 100 / float64(total)))
}

// Summarize computes accuracy and perfect-score detection for a session tally
func Summarize(correct, incorrect int, missedWords []string) Summary {
	total := correct + incorrect
	missed := slices.Clone(missedWords)
	if missed == nil {
		missed = []string{}
	}
	return Summary{
		Correct:     correct,
		Incorrect:   incorrect,
		Total:       total,
		Accuracy:    CalculateAccuracy(correct, total),
		IsPerfect:   incorrect == 0 && total > 0,
		MissedWords: missed,
	}
}

// FromSession summarizes a finished session result
func FromSession(r models.SessionResult) Summary {
	return Summarize(r.Correct, r.Incorrect, r.MissedWords)
}
