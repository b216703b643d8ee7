package vocab

import "strings"

// Group is the display group a venue belongs to. It drives how the
// rendering layer styles a facility booking.
type Group int

const (
	// GroupGeneric is the fallthrough for venues matching no other group.
	GroupGeneric Group = iota
	// GroupSpiceDining is the spice restaurant group.
	GroupSpiceDining
	// GroupSpa covers spa and treatment venues.
	GroupSpa
	// GroupLakeHouse covers the lake house venues.
	GroupLakeHouse
	// GroupLightDining covers tea, bento and afternoon items.
	GroupLightDining
)

// String returns the display name of the group.
func (g Group) String() string {
	switch g {
	case GroupSpiceDining:
		return "spice-dining"
	case GroupSpa:
		return "spa"
	case GroupLakeHouse:
		return "lake-house"
	case GroupLightDining:
		return "light-dining"
	default:
		return "generic"
	}
}

// spa treatment keywords, tested as substrings of the lower-cased name
var spaKeywords = []string{"massage", "facial", "aromatherapy", "spa", "wrap", "treatment"}

// light-dining keywords
var lightDiningKeywords = []string{"tea", "bento", "afternoon"}

// Classify maps a venue name to its display group. The tests run in a
// fixed priority order: spice dining, then spa, then lake house, then
// light dining, then generic.
func Classify(venue string) Group {
	name := strings.ToLower(venue)

	if strings.Contains(name, "spice") {
		return GroupSpiceDining
	}
	for _, kw := range spaKeywords {
		if strings.Contains(name, kw) {
			return GroupSpa
		}
	}
	if strings.HasPrefix(name, "lh ") || strings.Contains(name, "lake house") {
		return GroupLakeHouse
	}
	for _, kw := range lightDiningKeywords {
		if strings.Contains(name, kw) {
			return GroupLightDining
		}
	}
	return GroupGeneric
}
