// Package layout reconstructs the two-column structure of a registration
// card from extracted lines.
//
// The Classifier assigns each line to the header, the left column (guest
// metadata, notes, history) or the right column (facility and dining
// bookings), using the line's horizontal position when available and
// content sniffing when it is not.
//
// The Repairer then runs a fixed four-stage heuristic pass over the
// classified columns to undo the damage the upstream extraction does to
// wrapped booking chains: times stranded in the wrong column, orphan time
// lines, and multiple bookings merged into one run of text. Each stage is
// a single forward pass over an immutable input; the stage order is
// load-bearing (chains must be split before leading orphan times can be
// reattached) and must not be changed.
package layout
