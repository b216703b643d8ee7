package highlight

import "strings"

// Section labels the structural role of a reconstructed card line, decided
// purely from its leading text. It is used only to style section headings.
type Section int

const (
	// SectionContent is the default for ordinary lines.
	SectionContent Section = iota
	// SectionFacilities starts the facility bookings block.
	SectionFacilities
	// SectionTraces starts the traces block.
	SectionTraces
	// SectionBookingNotes starts the booking notes block.
	SectionBookingNotes
	// SectionHousekeeping starts the housekeeping notes block.
	SectionHousekeeping
	// SectionAllergies starts the allergies block.
	SectionAllergies
	// SectionHistory starts the previous stays block.
	SectionHistory
	// SectionMeta marks guest metadata lines.
	SectionMeta
)

// String returns the section's display label.
func (s Section) String() string {
	switch s {
	case SectionFacilities:
		return "facilities"
	case SectionTraces:
		return "traces"
	case SectionBookingNotes:
		return "booking-notes"
	case SectionHousekeeping:
		return "housekeeping"
	case SectionAllergies:
		return "allergies"
	case SectionHistory:
		return "history"
	case SectionMeta:
		return "meta"
	default:
		return "content"
	}
}

// sectionPrefix pairs a leading-text prefix with its section label.
type sectionPrefix struct {
	prefix  string
	section Section
}

// sectionPrefixes is the ordered prefix table. The metadata group shares
// one label; ordering matters only in that the scan stops at the first hit.
var sectionPrefixes = []sectionPrefix{
	{"Facility Bookings:", SectionFacilities},
	{"Traces:", SectionTraces},
	{"Booking Notes", SectionBookingNotes},
	{"HK Notes:", SectionHousekeeping},
	{"Allergies:", SectionAllergies},
	{"Previous Stays", SectionHistory},
	{"Guest:", SectionMeta},
	{"Email:", SectionMeta},
	{"Tel:", SectionMeta},
	{"Address:", SectionMeta},
	{"Rate:", SectionMeta},
	{"Car:", SectionMeta},
}

// ClassifyLine returns the section label for a line's leading text, or
// SectionContent when no prefix matches.
func ClassifyLine(line string) Section {
	for _, sp := range sectionPrefixes {
		if strings.HasPrefix(line, sp.prefix) {
			return sp.section
		}
	}
	return SectionContent
}
