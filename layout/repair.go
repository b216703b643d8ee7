package layout

import (
	"regexp"
	"strings"

	"github.com/tsawler/folio/model"
	"github.com/tsawler/folio/vocab"
)

// leftStayRe matches the shape of a left-column stay line that has stolen
// a booking's time: id, arrival date, departure date, room/area name, and
// a trailing HH:MM. The left column's actual schema has no time field, so
// a line of this shape is structurally invalid and the time belongs to an
// incomplete right-column entry.
var leftStayRe = regexp.MustCompile(`^\d+\s+\d{1,2}/\d{1,2}/\d{2,4}\s+\d{1,2}/\d{1,2}/\d{2,4}\s+\S.*\s(\d{1,2}:\d{2})\s*$`)

// orphanTimeRe matches a line or fragment that is nothing but a time,
// optionally prefixed with the "@" it was torn away from.
var orphanTimeRe = regexp.MustCompile(`^@?\s*(\d{1,2}:\d{2})\s*$`)

// endsWithUnterminatedAt reports whether a line ends with an "@" that has
// no time after it: the marker of an incomplete entry pending repair.
func endsWithUnterminatedAt(line string) bool {
	return strings.HasSuffix(strings.TrimRight(line, " \t"), "@")
}

// appendTime appends a recovered time after a line's trailing "@".
func appendTime(line, time string) string {
	return strings.TrimRight(line, " \t") + " " + time
}

// Repairer runs the four-stage heuristic repair over a classified
// document. Stages only relocate HH:MM sequences that already exist in
// the input; no stage invents a time, and an entry that never recovers
// its time keeps its trailing "@" as a visible signal of lost data.
type Repairer struct {
	vocab *vocab.Vocabulary
}

// NewRepairer creates a repairer over the given vocabulary.
// A nil vocabulary falls back to the built-in default.
func NewRepairer(v *vocab.Vocabulary) *Repairer {
	if v == nil {
		v = vocab.Default()
	}
	return &Repairer{vocab: v}
}

// Repair runs all four stages in their fixed order. The order is
// load-bearing: chains must be split (stage 3) before the orphan times
// the split exposes can be reattached (stage 4).
func (r *Repairer) Repair(doc model.Document) model.Document {
	doc = r.StealTrailingTime(doc)
	doc = r.MergeOrphanTimes(doc)
	doc = r.SplitVenueChains(doc)
	doc = r.ReattachOrphanTimes(doc)
	return doc
}

// StealTrailingTime is stage 1: for every right-column entry ending in an
// unterminated "@", scan the left column for a stay line carrying a
// structurally invalid trailing time. On the first match the time moves
// onto the right entry and is stripped from the left line; scanning then
// continues with the next incomplete entry. Entries without a trailing
// "@" are never touched.
func (r *Repairer) StealTrailingTime(doc model.Document) model.Document {
	out := doc.Clone()
	for i, right := range out.Right {
		if !endsWithUnterminatedAt(right) {
			continue
		}
		for j, left := range out.Left {
			m := leftStayRe.FindStringSubmatch(left)
			if m == nil {
				continue
			}
			time := m[1]
			out.Right[i] = appendTime(right, time)
			stripped := strings.TrimRight(left, " \t")
			stripped = strings.TrimSuffix(stripped, time)
			out.Left[j] = strings.TrimRight(stripped, " \t")
			break
		}
	}
	return out
}

// MergeOrphanTimes is stage 2: a right-column line that is nothing but a
// bare time (optionally "@"-prefixed) is appended to the immediately
// preceding merged line when that line still ends in an unterminated "@";
// otherwise the orphan stays standalone.
func (r *Repairer) MergeOrphanTimes(doc model.Document) model.Document {
	out := doc.Clone()
	out.Right = mergeOrphans(out.Right)
	return out
}

// SplitVenueChains is stage 3: a right-column line holding two or more
// venue markers is split immediately before each marker, one line per
// booking, discarding empty fragments. Lines with fewer than two markers
// pass through unchanged.
func (r *Repairer) SplitVenueChains(doc model.Document) model.Document {
	out := doc.Clone()
	var split []string
	for _, line := range out.Right {
		idxs := r.vocab.MarkerIndices(line)
		if len(idxs) < 2 {
			split = append(split, line)
			continue
		}
		prev := 0
		for _, idx := range idxs {
			if idx > prev {
				split = append(split, line[prev:idx])
			}
			prev = idx
		}
		split = append(split, line[prev:])
	}
	out.Right = split
	return out
}

// ReattachOrphanTimes is stage 4: after the chain split, a bare time
// fragment separated from its wrapped venue becomes its own entry; if it
// immediately follows an entry still ending in an unterminated "@" it is
// appended there, otherwise it stays standalone.
func (r *Repairer) ReattachOrphanTimes(doc model.Document) model.Document {
	out := doc.Clone()
	out.Right = mergeOrphans(out.Right)
	return out
}

// mergeOrphans implements the shared forward pass of stages 2 and 4.
// The unterminated-"@" check runs against the merged output, so an orphan
// can complete an entry that itself just received earlier text.
func mergeOrphans(lines []string) []string {
	var merged []string
	for _, line := range lines {
		m := orphanTimeRe.FindStringSubmatch(line)
		if m != nil && len(merged) > 0 && endsWithUnterminatedAt(merged[len(merged)-1]) {
			merged[len(merged)-1] = appendTime(merged[len(merged)-1], m[1])
			continue
		}
		merged = append(merged, line)
	}
	return merged
}
