package vocab

import (
	"fmt"
	"strings"
)

// Vocabulary is an ordered list of known venue names. Marker recognition
// scans the list in order and takes the first name that matches, so more
// specific names must come before their own substrings.
type Vocabulary struct {
	names []string
}

// New creates a vocabulary from an ordered list of venue names.
// The slice is copied; callers may reuse it.
func New(names []string) *Vocabulary {
	v := &Vocabulary{names: make([]string, len(names))}
	copy(v.names, names)
	return v
}

// Default returns the built-in venue vocabulary for the source property.
func Default() *Vocabulary {
	return New([]string{
		"GH Pure Lakes Aromatherapy Massage",
		"GH Pure Lakes Deep Tissue Massage",
		"GH Pure Lakes Facial",
		"GH Pure Lakes",
		"LH Jetty Spa Treatment",
		"LH Jetty Spa",
		"LH Afternoon Tea",
		"LH Dinner",
		"LH Breakfast",
		"Lake House Spa",
		"Afternoon Tea",
		"Cream Tea",
		"Bento Box",
		"Hot Stone Massage",
		"Aromatherapy Massage",
		"Herbal Body Wrap",
		"Source",
		"Spice",
		"Pure",
	})
}

// Names returns a copy of the vocabulary in order.
func (v *Vocabulary) Names() []string {
	out := make([]string, len(v.names))
	copy(out, v.names)
	return out
}

// Len returns the number of entries.
func (v *Vocabulary) Len() int {
	return len(v.names)
}

// MatchAt reports the venue name matching at byte offset i of s, if any.
// The first vocabulary entry that is a prefix of s[i:] wins, which is what
// makes entry order significant.
func (v *Vocabulary) MatchAt(s string, i int) (string, bool) {
	if i < 0 || i >= len(s) {
		return "", false
	}
	rest := s[i:]
	for _, name := range v.names {
		if strings.HasPrefix(rest, name) {
			return name, true
		}
	}
	return "", false
}

// NextMarker finds the next venue marker in s at or after byte offset from.
// A venue marker is a "/" immediately followed by a vocabulary entry. It
// returns the marker's slash index and the matched venue name, or -1 and ""
// when no marker exists. A bare "/" with no recognized venue after it is
// not a marker, which is what lets DD/MM/YY dates live inside booking text.
func (v *Vocabulary) NextMarker(s string, from int) (int, string) {
	if from < 0 {
		from = 0
	}
	for i := from; i < len(s); i++ {
		if s[i] != '/' {
			continue
		}
		if name, ok := v.MatchAt(s, i+1); ok {
			return i, name
		}
	}
	return -1, ""
}

// MarkerIndices returns the slash indices of every venue marker in s,
// in left-to-right order.
func (v *Vocabulary) MarkerIndices(s string) []int {
	var out []int
	for i := 0; i < len(s); {
		idx, name := v.NextMarker(s, i)
		if idx < 0 {
			break
		}
		out = append(out, idx)
		i = idx + 1 + len(name)
	}
	return out
}

// Validate checks the vocabulary for ordering mistakes: a later entry that
// has an earlier entry as a prefix can never be matched, because the
// earlier, more general entry always wins first. Every vocabulary addition
// should be re-validated against the existing entries.
func (v *Vocabulary) Validate() error {
	for i, earlier := range v.names {
		for j := i + 1; j < len(v.names); j++ {
			later := v.names[j]
			if later != earlier && strings.HasPrefix(later, earlier) {
				return fmt.Errorf("vocabulary entry %q (position %d) is shadowed by earlier prefix %q (position %d)", later, j, earlier, i)
			}
		}
	}
	return nil
}
