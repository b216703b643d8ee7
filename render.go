package folio

import (
	"github.com/tsawler/folio/facility"
	"github.com/tsawler/folio/highlight"
	"github.com/tsawler/folio/vocab"
)

// RenderedLine is one reconstructed line prepared for display: its section
// label and its ordered highlight spans. Concatenating the spans' text
// reproduces Text exactly.
type RenderedLine struct {
	// Text is the line as reconstructed.
	Text string

	// Section is the structural role of the line.
	Section highlight.Section

	// Spans are the line's ordered highlight spans.
	Spans []highlight.Span
}

// Rendered is the fully categorized view of a registration card, produced
// for the rendering layer. It carries no behavior and no identity; it is
// recomputed and discarded on each render cycle.
type Rendered struct {
	// Header is the card's header line.
	Header string

	// Left holds the rendered left-column lines.
	Left []RenderedLine

	// Right holds the rendered right-column lines.
	Right []RenderedLine
}

// Render reconstructs the document and categorizes every line. It is a
// terminal operation.
//
// Right-column lines go through the facility tokenizer: each recovered
// booking becomes one span categorized by its venue's group, carrying
// date/time sub-emphasis in Sub. Lines with no venue marker anywhere, and
// all left-column lines, fall through to the full rule table instead.
func (r *Reconstructor) Render() *Rendered {
	doc := r.Reconstruct()
	v := r.options.vocabulary()

	full := highlight.NewDefault()
	detail := highlight.NewDetail()
	tok := facility.NewTokenizer(v)

	out := &Rendered{Header: doc.Header}
	for _, line := range doc.Left {
		out.Left = append(out.Left, renderGeneric(line, full))
	}
	for _, line := range doc.Right {
		out.Right = append(out.Right, renderRight(line, tok, full, detail))
	}
	return out
}

// renderGeneric categorizes a line with the full rule table.
func renderGeneric(line string, full *highlight.Highlighter) RenderedLine {
	return RenderedLine{
		Text:    line,
		Section: highlight.ClassifyLine(line),
		Spans:   full.Apply(line),
	}
}

// renderRight categorizes a right-column line. Booking lines become venue
// spans with nested date/time emphasis; the text before the first marker
// keeps its generic highlighting so section labels stay styled.
func renderRight(line string, tok *facility.Tokenizer, full, detail *highlight.Highlighter) RenderedLine {
	entries, ok := tok.Tokenize(line)
	if !ok {
		return renderGeneric(line, full)
	}

	var spans []highlight.Span
	if leading := tok.Leading(line); leading != "" {
		spans = append(spans, full.Apply(leading)...)
	}
	for _, e := range entries {
		spans = append(spans, highlight.Span{
			Text:     e.Text,
			Category: venueCategory(vocab.Classify(e.Venue)),
			Sub:      detail.Apply(e.Text),
		})
	}

	return RenderedLine{
		Text:    line,
		Section: highlight.ClassifyLine(line),
		Spans:   spans,
	}
}

// venueCategory maps a venue group to the span category carried by its
// facility spans.
func venueCategory(g vocab.Group) highlight.Category {
	return highlight.Category("venue-" + g.String())
}
