// Package normtext scrubs text produced by the upstream document extractor
// before it enters the reconstruction pipeline.
//
// Extractors working from rendered documents commonly emit compatibility
// runes (ligatures such as ﬁ, fullwidth digits) and stray control
// characters. Both break the keyword and pattern matching downstream, so
// incoming line text is NFKC-normalized and stripped of control runes
// first. Clean ASCII passes through unchanged.
package normtext

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// scrubber removes C0/C1 control runes (newline and tab excepted, since
// the fallback input format is newline-delimited) and applies NFKC.
var scrubber = transform.Chain(
	runes.Remove(runes.Predicate(func(r rune) bool {
		return unicode.IsControl(r) && r != '\n' && r != '\t'
	})),
	norm.NFKC,
)

// Clean returns s with compatibility runes normalized and control runes
// removed. On a transform error the input is returned unchanged; a line
// the scrubber cannot handle is still worth classifying as-is.
func Clean(s string) string {
	out, _, err := transform.String(scrubber, s)
	if err != nil {
		return s
	}
	return out
}

// CleanAll applies Clean to every line in a slice, returning a new slice.
func CleanAll(lines []string) []string {
	if lines == nil {
		return nil
	}
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = Clean(l)
	}
	return out
}
