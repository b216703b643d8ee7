package highlight

// Category identifies the semantic class of a highlighted span.
// The zero value is CategoryPlain: uncategorized text.
type Category string

const (
	// CategoryPlain marks text matched by no rule.
	CategoryPlain Category = ""

	// CategoryDinner marks a full dinner-reservation line.
	CategoryDinner Category = "dinner-reservation"

	// CategoryAllergy marks allergy and dietary requirement mentions.
	CategoryAllergy Category = "allergy"

	// CategoryVIP marks VIP and celebrity guest markers.
	CategoryVIP Category = "vip"

	// CategoryUpgrade marks complimentary upgrade flags.
	CategoryUpgrade Category = "upgrade"

	// CategoryPet marks pet mentions.
	CategoryPet Category = "pet"

	// CategoryPreReg marks pre-registration confirmations.
	CategoryPreReg Category = "pre-registration"

	// CategoryPurchase marks a named purchase with a date.
	CategoryPurchase Category = "purchase"

	// CategoryBilling marks billing instruction lines.
	CategoryBilling Category = "billing"

	// CategoryETA marks expected-arrival expressions, including ranges.
	CategoryETA Category = "eta"

	// CategoryOccasion marks special-occasion lines.
	CategoryOccasion Category = "occasion"

	// CategoryHistory marks stay-history lines.
	CategoryHistory Category = "stay-history"

	// CategoryInRoom marks in-room-on-arrival items.
	CategoryInRoom Category = "in-room"

	// CategoryPlate marks vehicle registration plates.
	CategoryPlate Category = "vehicle-plate"

	// CategoryRoom marks room-number-prefixed lines.
	CategoryRoom Category = "room"

	// CategoryRateCode marks rate codes.
	CategoryRateCode Category = "rate-code"

	// CategoryPrice marks currency amounts.
	CategoryPrice Category = "price"

	// CategoryDate marks a date inside facility detail text.
	CategoryDate Category = "date"

	// CategoryTime marks a time inside facility detail text.
	CategoryTime Category = "time"
)

// Span is a contiguous run of line text tagged with zero or one category.
// For any input line the concatenation of all produced spans' Text fields,
// in order, reproduces the line exactly.
type Span struct {
	// Text is the span's slice of the original line.
	Text string

	// Category is the span's semantic class; CategoryPlain for none.
	Category Category

	// Sub carries nested emphasis for facility spans: the date/time spans
	// produced by DetailRules over Text. The concatenation of Sub texts
	// equals Text. Nil for ordinary spans.
	Sub []Span
}

// Plain reports whether the span is uncategorized.
func (s Span) Plain() bool {
	return s.Category == CategoryPlain
}

// JoinSpans concatenates span texts, reproducing the source line.
func JoinSpans(spans []Span) string {
	var out string
	for _, s := range spans {
		out += s.Text
	}
	return out
}
