package validation

import (
	"fmt"
	"strings"
	"testing"
)

func TestValidateWord(t *testing.T) {
	tests := []struct {
		name    string
		word    string
		wantErr bool
	}{
		{
			name:    "simple word",
			word:    "necessary",
			wantErr: false,
		},
		{
			name:    "surrounding spaces",
			word:    "  cat ",
			wantErr: false,
		},
		{
			name:    "hyphenated",
			word:    "mother-in-law",
			wantErr: false,
		},
		{
			name:    "empty string",
			word:    "",
			wantErr: true,
		},
		{
			name:    "only spaces",
			word:    "   ",
			wantErr: true,
		},
		{
			name:    "contains comma",
			word:    "cat,dog",
			wantErr: true,
		},
		{
			name:    "contains newline",
			word:    "cat\ndog",
			wantErr: true,
		},
		{
			name:    "too long",
			word:    strings.Repeat("a", MaxWordLength+1),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateWord(tt.word)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateWord(%q) error = %v, wantErr %v", tt.word, err, tt.wantErr)
			}
		})
	}
}

func TestValidateWordText(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr bool
	}{
		{
			name:    "list of words",
			text:    "cat, dog\nhouse",
			wantErr: false,
		},
		{
			name:    "blank",
			text:    " \n ",
			wantErr: true,
		},
		{
			name:    "too long",
			text:    strings.Repeat("a", MaxTextLength+1),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateWordText(tt.text)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateWordText() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateSentence(t *testing.T) {
	if err := ValidateSentence(""); err != nil {
		t.Errorf("empty sentence should clear, got %v", err)
	}
	if err := ValidateSentence("The cat sat on the mat."); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateSentence(strings.Repeat("a", MaxSentenceLength+1)); err == nil {
		t.Error("expected error for long sentence")
	}
}

func TestValidateAnswer(t *testing.T) {
	tests := []struct {
		name    string
		answer  string
		wantErr bool
	}{
		{
			name:    "typed word",
			answer:  "hous",
			wantErr: false,
		},
		{
			name:    "empty",
			answer:  "",
			wantErr: true,
		},
		{
			name:    "whitespace only",
			answer:  "  \t ",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAnswer(tt.answer)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAnswer(%q) error = %v, wantErr %v", tt.answer, err, tt.wantErr)
			}
		})
	}
}

func TestValidationErrorFormatting(t *testing.T) {
	err := ValidateWord("")
	if !IsValidationError(err) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if got := err.Error(); got != "word: word is required" {
		t.Errorf("Error() = %q", got)
	}

	wrapped := fmt.Errorf("adding: %w", err)
	if !IsValidationError(wrapped) {
		t.Error("wrapped error should still be a ValidationError")
	}
}
