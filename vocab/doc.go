// Package vocab holds the venue vocabulary: the ordered list of known
// facility and venue names used to recognize venue markers in booking text,
// plus the classifier that maps a venue name to its display group.
//
// Order within the vocabulary is significant. More specific names must
// precede more general substrings of themselves ("GH Pure Lakes
// Aromatherapy Massage" before "Pure"), because marker recognition takes
// the first entry that matches. Validate reports entries that violate this
// ordering.
//
// The built-in vocabulary (Default) matches the source property's venues;
// alternate vocabularies can be loaded from YAML via LoadFile for testing
// or for a different property.
package vocab
