// Package facility splits a line of booking text into individual facility
// entries.
//
// A facility entry begins at a venue marker — a "/" immediately followed by
// a name from the venue vocabulary — and runs to just before the next venue
// marker or the end of the line. Because the boundary test is a lookahead
// for the next recognized venue, not for any "/", date strings such as
// 03/01/26 inside an entry's detail text are never mistaken for separators.
package facility
