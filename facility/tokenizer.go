package facility

import (
	"github.com/tsawler/folio/vocab"
)

// Entry is one facility booking recovered from a line. Text starts at the
// entry's "/" marker and runs to just before the next marker or line end,
// so concatenating a line's leading text with every entry's Text
// reproduces the line exactly.
type Entry struct {
	// Venue is the matched vocabulary name.
	Venue string

	// Text is the full matched text, marker included.
	Text string
}

// Tokenizer splits lines into facility entries using a venue vocabulary.
type Tokenizer struct {
	vocab *vocab.Vocabulary
}

// NewTokenizer creates a tokenizer over the given vocabulary.
// A nil vocabulary falls back to the built-in default.
func NewTokenizer(v *vocab.Vocabulary) *Tokenizer {
	if v == nil {
		v = vocab.Default()
	}
	return &Tokenizer{vocab: v}
}

// Tokenize splits line into facility entries in left-to-right order.
// The second return value is false when the line contains no venue marker
// at all; the caller should then treat the whole line as ordinary text.
func (t *Tokenizer) Tokenize(line string) ([]Entry, bool) {
	idx, name := t.vocab.NextMarker(line, 0)
	if idx < 0 {
		return nil, false
	}

	var entries []Entry
	for idx >= 0 {
		next, nextName := t.vocab.NextMarker(line, idx+1+len(name))
		end := len(line)
		if next >= 0 {
			end = next
		}
		entries = append(entries, Entry{Venue: name, Text: line[idx:end]})
		idx, name = next, nextName
	}
	return entries, true
}

// Leading returns the text before the line's first venue marker, or the
// empty string when the line starts with a marker or has none.
func (t *Tokenizer) Leading(line string) string {
	idx, _ := t.vocab.NextMarker(line, 0)
	if idx <= 0 {
		return ""
	}
	return line[:idx]
}
