// Package compare aligns a typed answer against the target word position by position.
package compare

import "spellingtrainer/internal/models"

// Placeholder is shown for positions past the end of the shorter string
const Placeholder = "_"

// Compare returns one entry per position in [0, max(len(user), len(correct))).
// The alignment is positional: insertions and transpositions are not realigned.
// A missing position never matches a present one, even a literal underscore.
func Compare(userWord, correctWord string) []models.CharComparison {
	user := []rune(userWord)
	correct := []rune(correctWord)

	n := max(len(user), len(correct))
	comparison := make([]models.CharComparison, n)
	for i := range n {
		userChar, userOK := charAt(user, i)
		correctChar, correctOK := charAt(correct, i)

		comparison[i] = models.CharComparison{
			UserChar:    userChar,
			CorrectChar: correctChar,
			IsCorrect:   userOK && correctOK && userChar == correctChar,
		}
	}
	return comparison
}

// IsExact reports whether every position of a comparison matched
func IsExact(comparison []models.CharComparison) bool {
	for _, c := range comparison {
		if !c.IsCorrect {
			return false
		}
	}
	return true
}

func charAt(s []rune, i int) (string, bool) {
	if i < len(s) {
		return string(s[i]), true
	}
	return Placeholder, false
}
