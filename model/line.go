package model

// PositionedLine represents one line of extracted text together with its
// position on the source page. X and Y are in the coordinate space of the
// upstream extractor; Y ordering is the natural reading order, and X is used
// only for column inference.
type PositionedLine struct {
	// Text is the extracted line content.
	Text string

	// X is the horizontal position of the line's left edge.
	X float64

	// Y is the vertical position of the line.
	Y float64
}
