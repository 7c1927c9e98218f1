package models

// CharComparison is one position of a typed answer aligned against the target word
type CharComparison struct {
	UserChar    string `json:"userChar"`
	CorrectChar string `json:"correctChar"`
	IsCorrect   bool   `json:"isCorrect"`
}

// Tally counts the scored attempts of a practice session
type Tally struct {
	Correct   int `json:"correct"`
	Incorrect int `json:"incorrect"`
}

// Total returns the number of scored attempts
func (t Tally) Total() int {
	return t.Correct + t.Incorrect
}

// SessionResult is what a finished practice session hands to the results summary
type SessionResult struct {
	Correct     int      `json:"correct"`
	Incorrect   int      `json:"incorrect"`
	MissedWords []string `json:"missedWords"`
}

// PracticeMode selects which words a practice session runs over
type PracticeMode string

const (
	PracticeAll        PracticeMode = "all"
	PracticeMisspelled PracticeMode = "misspelled"
	PracticeCustom     PracticeMode = "custom"
)
