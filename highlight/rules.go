package highlight

import "regexp"

// Rule pairs a pattern with the category assigned to its matches. Rules
// live in ordered tables: the table order is the priority order, and the
// first rule matching at a scan position wins.
type Rule struct {
	// Name identifies the rule for diagnostics and tests.
	Name string

	// Pattern is the compiled match pattern.
	Pattern *regexp.Regexp

	// Category is assigned to every match of Pattern.
	Category Category
}

// Rules returns the full default rule table for ordinary card lines.
// Order is significant and must not be rearranged: earlier rules win ties,
// and several later patterns (plates, rate codes) deliberately sit below
// the line-level rules that would otherwise be broken apart.
func Rules() []Rule {
	return []Rule{
		{
			Name:     "dinner-line",
			Pattern:  regexp.MustCompile(`(?i)^dinner\b.*`),
			Category: CategoryDinner,
		},
		{
			Name:     "allergy",
			Pattern:  regexp.MustCompile(`(?i)\b(?:allerg(?:y|ies|ic|en)\w*|coeliac|celiac|gluten[ -]?free|dairy[ -]?free|nut[ -]?free|lactose intoleran(?:t|ce)|intoleran(?:t|ce)|vegan|vegetarian|pescatarian)\b`),
			Category: CategoryAllergy,
		},
		{
			Name:     "vip",
			Pattern:  regexp.MustCompile(`(?i)\b(?:vip|celebrity|celeb)\b`),
			Category: CategoryVIP,
		},
		{
			Name:     "comp-upgrade",
			Pattern:  regexp.MustCompile(`(?i)\bcomp(?:limentary)?\.?\s+upgrade\b(?:\s+to\s+\S+)?`),
			Category: CategoryUpgrade,
		},
		{
			Name:     "pet",
			Pattern:  regexp.MustCompile(`(?i)\b(?:dogs?|puppy|pets?|cat)\b`),
			Category: CategoryPet,
		},
		{
			Name:     "pre-registration",
			Pattern:  regexp.MustCompile(`(?i)\bpre[ -]?reg(?:istration|istered)?\b(?:\s+(?:completed?|confirmed|done))?`),
			Category: CategoryPreReg,
		},
		{
			Name:     "purchase-with-date",
			Pattern:  regexp.MustCompile(`(?i)\b(?:purchased|bought)\b.*?\d{1,2}/\d{1,2}/\d{2,4}`),
			Category: CategoryPurchase,
		},
		{
			Name:     "billing-line",
			Pattern:  regexp.MustCompile(`(?i)\b(?:bill(?:ing)?|charges?|account|invoice)\s+to\s+.+`),
			Category: CategoryBilling,
		},
		{
			Name:     "eta",
			Pattern:  regexp.MustCompile(`(?i)\beta\b:?\s*(?:approx\.?\s*)?\d{1,2}[:.]\d{2}(?:\s*-\s*\d{1,2}[:.]\d{2})?`),
			Category: CategoryETA,
		},
		{
			Name:     "occasion",
			Pattern:  regexp.MustCompile(`(?i)\b(?:birthday|anniversary|honeymoon|babymoon|engagement|proposal|celebrat(?:ing|ion))\b`),
			Category: CategoryOccasion,
		},
		{
			Name:     "stay-history-line",
			Pattern:  regexp.MustCompile(`(?i)^.*(?:\d+(?:st|nd|rd|th)\s+(?:stay|visit)|stayed\s+\d+\s+times?|previous\s+stays?|returning\s+guest).*$`),
			Category: CategoryHistory,
		},
		{
			Name:     "in-room-on-arrival-line",
			Pattern:  regexp.MustCompile(`(?i)^.*\bin[ -]?room(?:\s+on\s+arrival)\b.*$`),
			Category: CategoryInRoom,
		},
		{
			Name:     "plate-current",
			Pattern:  regexp.MustCompile(`\b[A-Z]{2}[0-9]{2}\s?[A-Z]{3}\b`),
			Category: CategoryPlate,
		},
		{
			Name:     "plate-prefix",
			Pattern:  regexp.MustCompile(`\b[A-Z][0-9]{1,3}\s?[A-Z]{3}\b`),
			Category: CategoryPlate,
		},
		{
			Name:     "plate-dateless",
			Pattern:  regexp.MustCompile(`\b[A-Z]{3}\s?[0-9]{3}\b`),
			Category: CategoryPlate,
		},
		{
			Name:     "room-prefix",
			Pattern:  regexp.MustCompile(`^\d{1,3}\s?-\s?[A-Za-z][\w']*`),
			Category: CategoryRoom,
		},
		{
			Name:     "rate-code",
			Pattern:  regexp.MustCompile(`\b(?:DBB|BB|RO|HB|FB|ADVP?|FLEX|CORP|RACK|PKG)\d*\b`),
			Category: CategoryRateCode,
		},
		{
			Name:     "price",
			Pattern:  regexp.MustCompile(`£\s?\d[\d,]*(?:\.\d{2})?`),
			Category: CategoryPrice,
		},
	}
}

// DetailRules returns the reduced rule table used for the detail text of a
// single facility entry. It recognizes only dates and times, so a facility
// span can carry nested emphasis without losing its venue category.
func DetailRules() []Rule {
	return []Rule{
		{
			Name:     "detail-date",
			Pattern:  regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{2,4}\b`),
			Category: CategoryDate,
		},
		{
			Name:     "detail-time",
			Pattern:  regexp.MustCompile(`\b\d{1,2}:\d{2}\b`),
			Category: CategoryTime,
		},
	}
}
