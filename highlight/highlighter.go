package highlight

// Highlighter applies an ordered rule table to lines of text.
// It is stateless and safe for concurrent use.
type Highlighter struct {
	rules []Rule
}

// New creates a highlighter over the given ordered rule table.
func New(rules []Rule) *Highlighter {
	return &Highlighter{rules: rules}
}

// NewDefault creates a highlighter over the full default rule table.
func NewDefault() *Highlighter {
	return New(Rules())
}

// NewDetail creates a highlighter over the reduced date/time table.
func NewDetail() *Highlighter {
	return New(DetailRules())
}

// Apply scans line left to right and returns its spans in order.
// At each position, the earliest match across all rules is taken; when two
// rules match at the same position, the one earlier in the table wins.
// Text covered by no rule becomes plain spans, so the concatenation of the
// returned spans always equals line.
func (h *Highlighter) Apply(line string) []Span {
	if line == "" {
		return nil
	}

	var spans []Span
	pos := 0
	for pos < len(line) {
		rest := line[pos:]

		best := -1
		var loc []int
		for i, r := range h.rules {
			m := r.Pattern.FindStringIndex(rest)
			if m == nil || m[1] == m[0] {
				continue
			}
			if loc == nil || m[0] < loc[0] {
				best, loc = i, m
			}
		}

		if loc == nil {
			spans = append(spans, Span{Text: rest})
			break
		}

		if loc[0] > 0 {
			spans = append(spans, Span{Text: rest[:loc[0]]})
		}
		spans = append(spans, Span{
			Text:     rest[loc[0]:loc[1]],
			Category: h.rules[best].Category,
		})
		pos += loc[1]
	}
	return spans
}
