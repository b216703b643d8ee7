package layout

import (
	"strings"

	"github.com/tsawler/folio/model"
	"github.com/tsawler/folio/vocab"
)

// ClassifierConfig holds configuration for column classification.
type ClassifierConfig struct {
	// SplitX is the horizontal threshold dividing the columns: a line at
	// X >= SplitX belongs to the right column. The default is tied to the
	// source document's page layout; a change in the upstream extraction
	// format requires recalibrating it.
	// Default: 200
	SplitX float64

	// RightPrefixes are the leading labels that identify right-column
	// content on the positionless fallback path.
	// Default: "Facility Bookings:", "Allergies:", "HK Notes:"
	RightPrefixes []string
}

// DefaultClassifierConfig returns the configuration matching the source
// document layout.
func DefaultClassifierConfig() ClassifierConfig {
	return ClassifierConfig{
		SplitX: 200,
		RightPrefixes: []string{
			"Facility Bookings:",
			"Allergies:",
			"HK Notes:",
		},
	}
}

// Classifier assigns extracted lines to the header and columns.
type Classifier struct {
	config ClassifierConfig
	vocab  *vocab.Vocabulary
}

// NewClassifier creates a classifier with default configuration.
// A nil vocabulary falls back to the built-in default.
func NewClassifier(v *vocab.Vocabulary) *Classifier {
	return NewClassifierWithConfig(v, DefaultClassifierConfig())
}

// NewClassifierWithConfig creates a classifier with custom configuration.
func NewClassifierWithConfig(v *vocab.Vocabulary, config ClassifierConfig) *Classifier {
	if v == nil {
		v = vocab.Default()
	}
	return &Classifier{config: config, vocab: v}
}

// Classify assigns positioned lines to header, left and right columns.
// The first line is always the header; every later line goes right when
// its X is at or past the split threshold. Empty input yields an empty
// document, never an error: the caller treats empty columns as "no data".
func (c *Classifier) Classify(lines []model.PositionedLine) model.Document {
	if len(lines) == 0 {
		return model.Document{}
	}

	doc := model.Document{Header: lines[0].Text}
	for _, line := range lines[1:] {
		if line.X >= c.config.SplitX {
			doc.Right = append(doc.Right, line.Text)
		} else {
			doc.Left = append(doc.Left, line.Text)
		}
	}
	return doc
}

// ClassifyText is the fallback path for input captured without position
// data. The first line of raw is the header. A later line goes right when
// it starts with a right-column label or with a venue marker. A line
// carrying an embedded venue marker past its start is split there: the
// prefix stays left, the suffix from the marker onward goes right. This
// recovers rows whose trailing cells the extractor wrapped into the left
// column.
func (c *Classifier) ClassifyText(raw string) model.Document {
	if raw == "" {
		return model.Document{}
	}

	lines := strings.Split(raw, "\n")
	doc := model.Document{Header: lines[0]}
	for _, line := range lines[1:] {
		switch {
		case c.hasRightPrefix(line):
			doc.Right = append(doc.Right, line)
		default:
			idx, _ := c.vocab.NextMarker(line, 0)
			switch {
			case idx == 0:
				doc.Right = append(doc.Right, line)
			case idx > 0:
				doc.Left = append(doc.Left, line[:idx])
				doc.Right = append(doc.Right, line[idx:])
			default:
				doc.Left = append(doc.Left, line)
			}
		}
	}
	return doc
}

func (c *Classifier) hasRightPrefix(line string) bool {
	for _, p := range c.config.RightPrefixes {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}
