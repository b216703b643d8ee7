package model

// Document is the reconstructed view of a registration card: a header line,
// a left column of guest metadata, notes and history, and a right column of
// facility and dining bookings.
//
// A Document is derived, transient data. It is recomputed from the source
// lines on every invocation and never persisted.
type Document struct {
	// Header is the first line of the card.
	Header string

	// Left holds the left-column lines in reading order.
	Left []string

	// Right holds the right-column lines in reading order.
	Right []string
}

// IsEmpty reports whether the document contains no content at all.
// Callers should treat an empty document as "no data", not as an error.
func (d Document) IsEmpty() bool {
	return d.Header == "" && len(d.Left) == 0 && len(d.Right) == 0
}

// Clone returns a deep copy of the document. Pipeline stages operate on
// copies so that each stage's input remains observable in isolation.
func (d Document) Clone() Document {
	out := Document{Header: d.Header}
	if d.Left != nil {
		out.Left = make([]string, len(d.Left))
		copy(out.Left, d.Left)
	}
	if d.Right != nil {
		out.Right = make([]string, len(d.Right))
		copy(out.Right, d.Right)
	}
	return out
}
