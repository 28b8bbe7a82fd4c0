package dateparse

import (
	"testing"
	"time"
)

func TestParseInFormats(t *testing.T) {
	cases := []struct {
		input string
		year  int
		month time.Month
		day   int
	}{
		{"2024-07-25", 2024, time.July, 25},
		{"2024-07-25 18:30:00", 2024, time.July, 25},
		{"25/07/2024", 2024, time.July, 25},
		{"07/25/2024", 2024, time.July, 25}, // second token > 12, month/day/year
		{"25-07-2024", 2024, time.July, 25},
		{"25.07.2024", 2024, time.July, 25},
		{"2024/07/25", 2024, time.July, 25},
		{"05/07/2024", 2024, time.July, 5}, // ambiguous, day/month default
		{"30 Juli 2024", 2024, time.July, 30},
		{"30 juli 2024", 2024, time.July, 30},
		{"30 July 2024", 2024, time.July, 30},
		{"1 Agustus 2024", 2024, time.August, 1},
		{"Kamis, 25 Juli 2024", 2024, time.July, 25},
	}
	for _, c := range cases {
		got, ok := ParseIn(c.input, time.UTC)
		if !ok {
			t.Errorf("ParseIn(%q) failed, want %d-%02d-%02d", c.input, c.year, c.month, c.day)
			continue
		}
		if got.Year() != c.year || got.Month() != c.month || got.Day() != c.day {
			t.Errorf("ParseIn(%q) = %v, want %d-%02d-%02d", c.input, got, c.year, c.month, c.day)
		}
	}
}

func TestParseInTimeComponent(t *testing.T) {
	got, ok := ParseIn("25/07/2024 19:45", time.UTC)
	if !ok || got.Hour() != 19 || got.Minute() != 45 {
		t.Errorf("ParseIn(25/07/2024 19:45) = %v, %v; want 19:45", got, ok)
	}

	got, ok = ParseIn("Kamis, 25 Juli 2024 pukul 19.30.25 WIB", time.UTC)
	if !ok {
		t.Fatal("locale string failed to parse")
	}
	if got.Day() != 25 || got.Month() != time.July || got.Hour() != 19 || got.Minute() != 30 || got.Second() != 25 {
		t.Errorf("locale string = %v, want 2024-07-25 19:30:25", got)
	}
}

func TestParseInFailure(t *testing.T) {
	inputs := []string{
		"not a date",
		"",
		"   ",
		"Juli",        // month without day and year
		"25/07",       // no year
		"13/13/13",    // no 4-digit year token
		"99/99/2024",  // out-of-range day and month
	}
	for _, input := range inputs {
		if got, ok := ParseIn(input, time.UTC); ok {
			t.Errorf("ParseIn(%q) = %v, want failure", input, got)
		}
	}
}

func TestParseUsesLocation(t *testing.T) {
	loc := time.FixedZone("WIB", 7*3600)
	got, ok := ParseIn("25/07/2024", loc)
	if !ok {
		t.Fatal("ParseIn failed")
	}
	if got.Location() != loc {
		t.Errorf("location = %v, want %v", got.Location(), loc)
	}
}
