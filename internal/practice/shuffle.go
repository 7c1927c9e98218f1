package practice

import "math/rand/v2"

// Shuffle returns a uniformly shuffled copy of words using Fisher-Yates.
// A nil rng uses the global source.
func Shuffle(words []string, rng *rand.Rand) []string {
	shuffled := make([]string, len(words))
	copy(shuffled, words)

	intN := rand.IntN
	if rng != nil {
		intN = rng.IntN
	}

	for i := len(shuffled) - 1; i > 0; i-- {
		j := intN(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}
