package models

import (
	"slices"
	"strings"
)

// WordRecord holds the lifetime statistics for a single word
type WordRecord struct {
	Correct         int      `json:"correct"`
	Incorrect       int      `json:"incorrect"`
	Mistakes        []string `json:"mistakes"`
	ExampleSentence string   `json:"exampleSentence"`
}

// NewWordRecord returns an empty record with no attempts
func NewWordRecord() *WordRecord {
	return &WordRecord{Mistakes: []string{}}
}

// TotalAttempts returns the number of scored attempts for the word
func (r *WordRecord) TotalAttempts() int {
	return r.Correct + r.Incorrect
}

// HasMistake reports whether the typed text was already recorded as a mistake
func (r *WordRecord) HasMistake(typed string) bool {
	return slices.Contains(r.Mistakes, typed)
}

// WordStoreDocument is the single persisted aggregate of known words,
// their statistics and the misspelled set
type WordStoreDocument struct {
	AllWords        []string               `json:"allWords"`
	MisspelledWords []string               `json:"misspelledWords"`
	WordHistory     map[string]*WordRecord `json:"wordHistory"`
}

// NewWordStoreDocument returns the empty first-run document
func NewWordStoreDocument() *WordStoreDocument {
	return &WordStoreDocument{
		AllWords:        []string{},
		MisspelledWords: []string{},
		WordHistory:     make(map[string]*WordRecord),
	}
}

// NormalizeWord returns the identity form of a word: trimmed and lowercased
func NormalizeWord(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

// Normalize replaces nil collections with empty ones and creates missing
// records for every known word. Documents written by older clients may lack them.
func (d *WordStoreDocument) Normalize() {
	if d.AllWords == nil {
		d.AllWords = []string{}
	}
	if d.MisspelledWords == nil {
		d.MisspelledWords = []string{}
	}
	if d.WordHistory == nil {
		d.WordHistory = make(map[string]*WordRecord)
	}
	for word, record := range d.WordHistory {
		if record == nil {
			d.WordHistory[word] = NewWordRecord()
			continue
		}
		if record.Mistakes == nil {
			record.Mistakes = []string{}
		}
	}
	for _, word := range d.AllWords {
		if _, ok := d.WordHistory[word]; !ok {
			d.WordHistory[word] = NewWordRecord()
		}
	}
}

// Contains reports whether the word is known
func (d *WordStoreDocument) Contains(word string) bool {
	return slices.Contains(d.AllWords, NormalizeWord(word))
}

// IsMisspelled reports whether the word is currently flagged for review
func (d *WordStoreDocument) IsMisspelled(word string) bool {
	return slices.Contains(d.MisspelledWords, NormalizeWord(word))
}

// Record returns the statistics for a word
func (d *WordStoreDocument) Record(word string) (*WordRecord, bool) {
	record, ok := d.WordHistory[NormalizeWord(word)]
	return record, ok
}

// ExampleSentence returns the example sentence for a word, or "" if none is set
func (d *WordStoreDocument) ExampleSentence(word string) string {
	if record, ok := d.Record(word); ok {
		return record.ExampleSentence
	}
	return ""
}

// AddWord adds a word and initializes its record.
// Returns false if the word is blank or already known.
func (d *WordStoreDocument) AddWord(word string) bool {
	word = NormalizeWord(word)
	if word == "" || slices.Contains(d.AllWords, word) {
		return false
	}

	d.AllWords = append(d.AllWords, word)
	if _, ok := d.WordHistory[word]; !ok {
		d.WordHistory[word] = NewWordRecord()
	}
	return true
}

// DeleteWord removes a word from the known words, the misspelled set and the history.
// Returns false if the word was not known.
func (d *WordStoreDocument) DeleteWord(word string) bool {
	word = NormalizeWord(word)
	_, hadRecord := d.WordHistory[word]
	known := slices.Contains(d.AllWords, word)

	d.AllWords = slices.DeleteFunc(d.AllWords, func(w string) bool { return w == word })
	d.MisspelledWords = slices.DeleteFunc(d.MisspelledWords, func(w string) bool { return w == word })
	delete(d.WordHistory, word)

	return known || hadRecord
}

// RecordAttempt applies one scored attempt to the word's statistics and the misspelled set
func (d *WordStoreDocument) RecordAttempt(word string, wasCorrect bool, typed string) {
	word = NormalizeWord(word)
	record, ok := d.WordHistory[word]
	if !ok {
		record = NewWordRecord()
		d.WordHistory[word] = record
	}

	if wasCorrect {
		record.Correct++
		d.MisspelledWords = slices.DeleteFunc(d.MisspelledWords, func(w string) bool { return w == word })
		return
	}

	record.Incorrect++
	typed = NormalizeWord(typed)
	if !record.HasMistake(typed) {
		record.Mistakes = append(record.Mistakes, typed)
	}
	if !slices.Contains(d.MisspelledWords, word) {
		d.MisspelledWords = append(d.MisspelledWords, word)
	}
}

// SetExampleSentence stores a trimmed example sentence for a known word.
// Sentences keep their original casing. Returns false if the word is not known.
func (d *WordStoreDocument) SetExampleSentence(word, sentence string) bool {
	word = NormalizeWord(word)
	if !slices.Contains(d.AllWords, word) {
		return false
	}
	record, ok := d.WordHistory[word]
	if !ok {
		record = NewWordRecord()
		d.WordHistory[word] = record
	}
	record.ExampleSentence = strings.TrimSpace(sentence)
	return true
}

// Canonical rebuilds the document from its words so that every key is in
// identity form: known words are lowercased and deduplicated, records keyed by
// case variants of one word are combined, and the misspelled set and history
// only hold known words.
func (d *WordStoreDocument) Canonical() *WordStoreDocument {
	keys := make([]string, 0, len(d.WordHistory))
	for key := range d.WordHistory {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	records := make(map[string]*WordRecord, len(keys))
	for _, key := range keys {
		record := d.WordHistory[key]
		if record == nil {
			continue
		}
		word := NormalizeWord(key)
		if _, ok := records[word]; !ok {
			records[word] = NewWordRecord()
		}
		records[word].combine(record)
	}

	out := NewWordStoreDocument()
	for _, word := range d.AllWords {
		if !out.AddWord(word) {
			continue
		}
		word = NormalizeWord(word)
		if record, ok := records[word]; ok {
			out.WordHistory[word] = record
		}
	}
	for _, word := range d.MisspelledWords {
		word = NormalizeWord(word)
		if slices.Contains(out.AllWords, word) && !slices.Contains(out.MisspelledWords, word) {
			out.MisspelledWords = append(out.MisspelledWords, word)
		}
	}
	return out
}

// Merge adds every word of other that this document does not know yet,
// carrying over its record and misspelled flag. Known words are left untouched.
// Returns the number of words added.
func (d *WordStoreDocument) Merge(other *WordStoreDocument) int {
	other = other.Canonical()
	added := 0
	for _, word := range other.AllWords {
		if !d.AddWord(word) {
			continue
		}
		added++
		word = NormalizeWord(word)
		if record, ok := other.Record(word); ok && record != nil {
			d.WordHistory[word] = record.clone()
		}
		if other.IsMisspelled(word) {
			d.MisspelledWords = append(d.MisspelledWords, word)
		}
	}
	return added
}

// Clone returns a deep copy of the document
func (d *WordStoreDocument) Clone() *WordStoreDocument {
	c := &WordStoreDocument{
		AllWords:        slices.Clone(d.AllWords),
		MisspelledWords: slices.Clone(d.MisspelledWords),
		WordHistory:     make(map[string]*WordRecord, len(d.WordHistory)),
	}
	for word, record := range d.WordHistory {
		if record != nil {
			c.WordHistory[word] = record.clone()
		}
	}
	return c
}

// combine folds other into r. Mistakes are normalized and the first non-empty sentence wins.
func (r *WordRecord) combine(other *WordRecord) {
	r.Correct += other.Correct
	r.Incorrect += other.Incorrect
	for _, typed := range other.Mistakes {
		typed = NormalizeWord(typed)
		if !r.HasMistake(typed) {
			r.Mistakes = append(r.Mistakes, typed)
		}
	}
	if r.ExampleSentence == "" {
		r.ExampleSentence = other.ExampleSentence
	}
}

func (r *WordRecord) clone() *WordRecord {
	c := *r
	c.Mistakes = slices.Clone(r.Mistakes)
	if c.Mistakes == nil {
		c.Mistakes = []string{}
	}
	return &c
}

// WordHistoryEntry pairs a word with its record for listing
type WordHistoryEntry struct {
	Word       string     `json:"word"`
	Record     WordRecord `json:"record"`
	Misspelled bool       `json:"misspelled"`
}

// WordStats summarizes the store for the home screen
type WordStats struct {
	TotalWords      int `json:"totalWords"`
	MisspelledCount int `json:"misspelledCount"`
}
