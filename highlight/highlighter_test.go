package highlight

import (
	"regexp"
	"testing"
)

func TestHighlighter_Lossless(t *testing.T) {
	h := NewDefault()

	lines := []string{
		"",
		"plain text with nothing to match",
		"ETA: 14:30-15:00",
		"Allergies: shellfish, gluten-free",
		"VIP guest — no press",
		"Car: AB12 CDE silver",
		"Dinner reservation 19:30 for 2",
		"Champagne £85.00 in room on arrival",
		"3rd stay, previous stays in 14-Lyth",
		"Comp upgrade to Lakeside",
		"Purchased robe 03/01/26 £95.00",
	}

	for _, line := range lines {
		spans := h.Apply(line)
		if got := JoinSpans(spans); got != line {
			t.Errorf("losslessness broken:\n got %q\nwant %q", got, line)
		}
	}
}

func TestHighlighter_ETARange(t *testing.T) {
	h := NewDefault()

	spans := h.Apply("ETA: 14:30-15:00")

	if len(spans) != 1 {
		t.Fatalf("expected one span covering the whole match, got %v", spans)
	}
	if spans[0].Category != CategoryETA {
		t.Errorf("category = %q, want %q", spans[0].Category, CategoryETA)
	}
	if spans[0].Text != "ETA: 14:30-15:00" {
		t.Errorf("text = %q", spans[0].Text)
	}
}

func TestHighlighter_PlateFormats(t *testing.T) {
	h := NewDefault()

	tests := []struct {
		name  string
		line  string
		plate string
	}{
		{"current style", "Car reg AB12 CDE", "AB12 CDE"},
		{"prefix style", "Car reg A123 BCD", "A123 BCD"},
		{"dateless style", "Car reg JKL 456", "JKL 456"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spans := h.Apply(tt.line)

			var found bool
			for _, s := range spans {
				if s.Category == CategoryPlate && s.Text == tt.plate {
					found = true
				}
			}
			if !found {
				t.Errorf("no plate span %q in %v", tt.plate, spans)
			}
		})
	}
}

func TestHighlighter_DinnerLineIsOneSpan(t *testing.T) {
	h := NewDefault()

	spans := h.Apply("Dinner reservation 19:30 for 2")

	if len(spans) != 1 || spans[0].Category != CategoryDinner {
		t.Errorf("expected one dinner span for the whole line, got %v", spans)
	}
}

func TestHighlighter_MixedLine(t *testing.T) {
	h := NewDefault()

	spans := h.Apply("Allergies: shellfish, gluten-free")

	if len(spans) < 3 {
		t.Fatalf("expected allergy spans with plain text between, got %v", spans)
	}
	if spans[0].Category != CategoryAllergy || spans[0].Text != "Allergies" {
		t.Errorf("spans[0] = %+v", spans[0])
	}
	last := spans[len(spans)-1]
	if last.Category != CategoryAllergy || last.Text != "gluten-free" {
		t.Errorf("last span = %+v", last)
	}
}

func TestHighlighter_UnmatchedTextIsPlain(t *testing.T) {
	h := NewDefault()

	spans := h.Apply("nothing matches in here at all")

	if len(spans) != 1 || !spans[0].Plain() {
		t.Errorf("expected one plain span, got %v", spans)
	}
}

func TestHighlighter_FirstRuleWinsTies(t *testing.T) {
	h := New([]Rule{
		{Name: "first", Pattern: regexp.MustCompile(`foo\w*`), Category: Category("first")},
		{Name: "second", Pattern: regexp.MustCompile(`food`), Category: Category("second")},
	})

	spans := h.Apply("food")

	if len(spans) != 1 || spans[0].Category != Category("first") {
		t.Errorf("first rule in table order must win ties, got %v", spans)
	}
}

func TestHighlighter_EarliestMatchWins(t *testing.T) {
	h := NewDefault()

	// Pet matches earlier in the line than the plate.
	spans := h.Apply("dog in car AB12 CDE")

	if spans[0].Category != CategoryPet || spans[0].Text != "dog" {
		t.Errorf("spans[0] = %+v", spans[0])
	}
}

func TestHighlighter_RateCodeAndPrice(t *testing.T) {
	h := NewDefault()

	spans := h.Apply("Rate: DBB £495.00 per night")

	var haveRate, havePrice bool
	for _, s := range spans {
		if s.Category == CategoryRateCode && s.Text == "DBB" {
			haveRate = true
		}
		if s.Category == CategoryPrice && s.Text == "£495.00" {
			havePrice = true
		}
	}
	if !haveRate || !havePrice {
		t.Errorf("missing rate or price span: %v", spans)
	}
}

func TestHighlighter_DetailRules(t *testing.T) {
	h := NewDetail()

	spans := h.Apply("/Source: Table for 2 03/01/26 @ 19:30")

	var haveDate, haveTime bool
	for _, s := range spans {
		switch s.Category {
		case CategoryDate:
			if s.Text != "03/01/26" {
				t.Errorf("date span = %q", s.Text)
			}
			haveDate = true
		case CategoryTime:
			if s.Text != "19:30" {
				t.Errorf("time span = %q", s.Text)
			}
			haveTime = true
		}
	}
	if !haveDate || !haveTime {
		t.Errorf("expected date and time spans, got %v", spans)
	}
	if got := JoinSpans(spans); got != "/Source: Table for 2 03/01/26 @ 19:30" {
		t.Errorf("detail highlighting lost text: %q", got)
	}
}

func TestHighlighter_DetailRulesIgnoreOtherCategories(t *testing.T) {
	h := NewDetail()

	spans := h.Apply("VIP dog £85.00")

	for _, s := range spans {
		if !s.Plain() {
			t.Errorf("detail table must only tag dates and times, got %+v", s)
		}
	}
}

func TestClassifyLine_Sections(t *testing.T) {
	tests := []struct {
		line string
		want Section
	}{
		{"Facility Bookings:", SectionFacilities},
		{"Traces: call guest re dietary", SectionTraces},
		{"Booking Notes", SectionBookingNotes},
		{"HK Notes: extra towels", SectionHousekeeping},
		{"Allergies: shellfish", SectionAllergies},
		{"Previous Stays 3", SectionHistory},
		{"Guest: Mr J Smith", SectionMeta},
		{"Car: AB12 CDE", SectionMeta},
		{"just an ordinary line", SectionContent},
		{"", SectionContent},
	}

	for _, tt := range tests {
		if got := ClassifyLine(tt.line); got != tt.want {
			t.Errorf("ClassifyLine(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestSection_String(t *testing.T) {
	if SectionFacilities.String() != "facilities" {
		t.Errorf("got %q", SectionFacilities.String())
	}
	if SectionContent.String() != "content" {
		t.Errorf("got %q", SectionContent.String())
	}
}
