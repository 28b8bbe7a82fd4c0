package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	valid := []string{"123", "0", "9876543210"}
	invalid := []string{"abc", "123a", "", "-123"}
	for _, s := range valid {
		if !IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = true, want false", s)
		}
	}
}

func TestIsValidNIA(t *testing.T) {
	valid := []string{"1234", "123225425", "12345678901234567890"}
	invalid := []string{"123", "123456789012345678901", "12a3456", "", "12 34"}
	for _, nia := range valid {
		if !IsValidNIA(nia) {
			t.Errorf("IsValidNIA(%q) = false, want true", nia)
		}
	}
	for _, nia := range invalid {
		if IsValidNIA(nia) {
			t.Errorf("IsValidNIA(%q) = true, want false", nia)
		}
	}
}

func TestCoordinateRanges(t *testing.T) {
	if !IsValidLatitude(-6.11) || IsValidLatitude(91) || IsValidLatitude(-90.5) {
		t.Error("latitude range check wrong")
	}
	if !IsValidLongitude(106.15) || IsValidLongitude(181) || IsValidLongitude(-180.5) {
		t.Error("longitude range check wrong")
	}
}
