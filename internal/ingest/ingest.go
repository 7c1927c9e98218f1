// Package ingest turns raw text (typed or read from a CSV/text file) into word lists.
package ingest

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

// ErrTooLarge is returned when an input file exceeds the configured size limit
var ErrTooLarge = errors.New("input exceeds maximum size")

var separatorRegexp = regexp.MustCompile(`[\n\r,]+`)

// Parse splits raw text on runs of newlines, carriage returns and commas,
// trims and lowercases each token and drops empty ones.
// Duplicates are kept; deduplication happens when words are stored.
func Parse(raw string) []string {
	tokens := separatorRegexp.Split(raw, -1)
	words := make([]string, 0, len(tokens))
	for _, token := range tokens {
		word := strings.ToLower(strings.TrimSpace(token))
		if word != "" {
			words = append(words, word)
		}
	}
	return words
}

// ParseReader reads at most maxBytes from r and parses the content.
// A maxBytes of zero or less disables the limit.
func ParseReader(r io.Reader, maxBytes int64) ([]string, error) {
	if maxBytes > 0 {
		r = io.LimitReader(r, maxBytes+1)
	}
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	if maxBytes > 0 && int64(len(content)) > maxBytes {
		return nil, ErrTooLarge
	}
	return Parse(string(content)), nil
}

// ParseFile reads and parses a CSV or plain-text word file
func ParseFile(path string, maxBytes int64) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	return ParseReader(f, maxBytes)
}
