// Package validation checks user input before it reaches the word store.
package validation

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	MaxWordLength     = 64
	MaxSentenceLength = 500
	MaxTextLength     = 10000
)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// IsValidationError reports whether err is or wraps a ValidationError
func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

// ValidateWord checks a single word as typed into the word manager
func ValidateWord(word string) error {
	word = strings.TrimSpace(word)
	if word == "" {
		return ValidationError{Field: "word", Message: "word is required"}
	}
	if utf8.RuneCountInString(word) > MaxWordLength {
		return ValidationError{Field: "word", Message: fmt.Sprintf("word must be at most %d characters", MaxWordLength)}
	}
	if strings.ContainsAny(word, ",\r\n") {
		return ValidationError{Field: "word", Message: "word must not contain commas or line breaks"}
	}
	return nil
}

// ValidateWordText checks free text holding one or more words
func ValidateWordText(text string) error {
	if strings.TrimSpace(text) == "" {
		return ValidationError{Field: "text", Message: "enter at least one word"}
	}
	if utf8.RuneCountInString(text) > MaxTextLength {
		return ValidationError{Field: "text", Message: fmt.Sprintf("text must be at most %d characters", MaxTextLength)}
	}
	return nil
}

// ValidateSentence checks an example sentence. An empty sentence clears it.
func ValidateSentence(sentence string) error {
	if utf8.RuneCountInString(strings.TrimSpace(sentence)) > MaxSentenceLength {
		return ValidationError{Field: "exampleSentence", Message: fmt.Sprintf("sentence must be at most %d characters", MaxSentenceLength)}
	}
	return nil
}

// ValidateAnswer checks a typed practice answer
func ValidateAnswer(answer string) error {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return ValidationError{Field: "answer", Message: "type the word before checking"}
	}
	if utf8.RuneCountInString(answer) > MaxWordLength*2 {
		return ValidationError{Field: "answer", Message: "answer is too long"}
	}
	return nil
}
