package facility

import (
	"strings"
	"testing"

	"github.com/tsawler/folio/vocab"
)

func TestTokenizer_TwoBookingsWithDates(t *testing.T) {
	tok := NewTokenizer(nil)

	line := "/Source: Table for 2 03/01/26 @ 19:30/Spice: Table for 2 02/01/26 @ 20:15"

	entries, ok := tok.Tokenize(line)
	if !ok {
		t.Fatal("expected facilities in line")
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	if entries[0].Venue != "Source" {
		t.Errorf("first venue = %q, want Source", entries[0].Venue)
	}
	if entries[1].Venue != "Spice" {
		t.Errorf("second venue = %q, want Spice", entries[1].Venue)
	}

	// Each entry keeps its own date and time; the date slashes must not
	// have been taken for separators.
	if entries[0].Text != "/Source: Table for 2 03/01/26 @ 19:30" {
		t.Errorf("first entry text = %q", entries[0].Text)
	}
	if entries[1].Text != "/Spice: Table for 2 02/01/26 @ 20:15" {
		t.Errorf("second entry text = %q", entries[1].Text)
	}
}

func TestTokenizer_NoMarker(t *testing.T) {
	tok := NewTokenizer(nil)

	entries, ok := tok.Tokenize("Table for 2 03/01/26 @ 19:30")
	if ok {
		t.Error("a line with no venue marker has no facilities")
	}
	if entries != nil {
		t.Errorf("expected nil entries, got %v", entries)
	}
}

func TestTokenizer_RoundTrip(t *testing.T) {
	tok := NewTokenizer(nil)

	lines := []string{
		"/Source: Table for 2 03/01/26 @ 19:30",
		"/Source: 03/01/26 @ 19:30/Spice: 02/01/26 @ 20:15/Afternoon Tea: 04/01/26 @ 15:00",
		"Facility Bookings: /GH Pure Lakes Aromatherapy Massage 60m @ 10:00",
	}

	for _, line := range lines {
		entries, ok := tok.Tokenize(line)
		if !ok {
			t.Fatalf("expected facilities in %q", line)
		}

		var joined strings.Builder
		joined.WriteString(tok.Leading(line))
		for _, e := range entries {
			joined.WriteString(e.Text)
		}
		if joined.String() != line {
			t.Errorf("round trip failed:\n got %q\nwant %q", joined.String(), line)
		}
	}
}

func TestTokenizer_EntryCountMatchesMarkers(t *testing.T) {
	v := vocab.Default()
	tok := NewTokenizer(v)

	line := "/Source: a/Spice: b/Pure: c"

	entries, ok := tok.Tokenize(line)
	if !ok {
		t.Fatal("expected facilities")
	}
	if want := len(v.MarkerIndices(line)); len(entries) != want {
		t.Errorf("expected %d entries, got %d", want, len(entries))
	}
}

func TestTokenizer_Leading(t *testing.T) {
	tok := NewTokenizer(nil)

	tests := []struct {
		line string
		want string
	}{
		{"/Source: Table @ 19:30", ""},
		{"Facility Bookings: /Source: Table @ 19:30", "Facility Bookings: "},
		{"no facilities here", ""},
	}

	for _, tt := range tests {
		if got := tok.Leading(tt.line); got != tt.want {
			t.Errorf("Leading(%q) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestTokenizer_MostSpecificVenueWins(t *testing.T) {
	tok := NewTokenizer(nil)

	entries, ok := tok.Tokenize("/GH Pure Lakes Aromatherapy Massage 60m @ 10:00")
	if !ok || len(entries) != 1 {
		t.Fatalf("expected exactly one entry, got %v (ok=%v)", entries, ok)
	}
	if entries[0].Venue != "GH Pure Lakes Aromatherapy Massage" {
		t.Errorf("venue = %q, want the full specific name", entries[0].Venue)
	}
}
