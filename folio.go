// Package folio reconstructs a semantic view of a hotel registration card
// from the lossy per-line text an upstream document extractor produces,
// then classifies substrings of each reconstructed line into semantic
// categories for display.
//
// Basic usage:
//
//	doc := folio.FromLines(lines).Reconstruct()
//
// With rendering and options:
//
//	rendered := folio.FromLines(lines).
//	    SplitX(180).
//	    Render()
//
// When position data was not captured, use the raw-text fallback:
//
//	doc := folio.FromText(raw).Reconstruct()
//
// Reconstruction is pure and never fails: empty input yields an empty
// document, and unrecoverable data (an entry whose "@" never found its
// time) is passed through visibly rather than guessed at.
package folio

import (
	"github.com/tsawler/folio/internal/normtext"
	"github.com/tsawler/folio/layout"
	"github.com/tsawler/folio/model"
	"github.com/tsawler/folio/vocab"
)

// Reconstructor holds one guest record's input lines and the options to
// reconstruct them with. Configuration methods return the receiver for
// fluent chaining; terminal operations are Reconstruct and Render.
type Reconstructor struct {
	lines    []model.PositionedLine
	raw      string
	fromText bool
	options  reconstructOptions
}

// FromLines creates a Reconstructor over positioned lines, the preferred
// input form. Ordering by Y is assumed to be the given order; the first
// line is the card header.
func FromLines(lines []model.PositionedLine) *Reconstructor {
	return &Reconstructor{
		lines:   lines,
		options: defaultReconstructOptions(),
	}
}

// FromText creates a Reconstructor over a newline-delimited string, the
// fallback form used when position data was not captured.
func FromText(raw string) *Reconstructor {
	return &Reconstructor{
		raw:      raw,
		fromText: true,
		options:  defaultReconstructOptions(),
	}
}

// Vocabulary sets an alternate venue vocabulary.
func (r *Reconstructor) Vocabulary(v *vocab.Vocabulary) *Reconstructor {
	r.options = r.options.clone()
	r.options.vocab = v
	return r
}

// SplitX overrides the column split threshold used on the positioned path.
func (r *Reconstructor) SplitX(x float64) *Reconstructor {
	r.options = r.options.clone()
	r.options.splitX = x
	r.options.splitXSet = true
	return r
}

// KeepRaw disables the extraction scrubbing (NFKC normalization and
// control-rune removal) applied to incoming text.
func (r *Reconstructor) KeepRaw() *Reconstructor {
	r.options = r.options.clone()
	r.options.keepRaw = true
	return r
}

// Reconstruct classifies the input into header and columns and runs the
// four-stage repair pipeline. It is a terminal operation.
func (r *Reconstructor) Reconstruct() model.Document {
	v := r.options.vocabulary()

	config := layout.DefaultClassifierConfig()
	if r.options.splitXSet {
		config.SplitX = r.options.splitX
	}
	classifier := layout.NewClassifierWithConfig(v, config)

	var doc model.Document
	if r.fromText {
		raw := r.raw
		if !r.options.keepRaw {
			raw = normtext.Clean(raw)
		}
		doc = classifier.ClassifyText(raw)
	} else {
		lines := r.lines
		if !r.options.keepRaw {
			lines = scrubLines(lines)
		}
		doc = classifier.Classify(lines)
	}

	return layout.NewRepairer(v).Repair(doc)
}

// scrubLines applies extraction scrubbing to line text, leaving positions
// untouched.
func scrubLines(lines []model.PositionedLine) []model.PositionedLine {
	if lines == nil {
		return nil
	}
	out := make([]model.PositionedLine, len(lines))
	copy(out, lines)
	for i := range out {
		out[i].Text = normtext.Clean(out[i].Text)
	}
	return out
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for scripts or tests
// loading vocabulary or rule files, where error handling would be
// cumbersome.
//
// Example:
//
//	v := folio.Must(vocab.LoadFile("venues.yaml"))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
