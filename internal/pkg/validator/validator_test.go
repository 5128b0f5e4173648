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

func TestIsValidDate(t *testing.T) {
	valid := []string{"2025-08-18", "2000-12-31"}
	invalid := []string{"2025-13-01", "2025-01-32", "2025/01/01", "01-01-2025", ""}
	for _, s := range valid {
		if _, ok := IsValidDate(s); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestLatLngRanges(t *testing.T) {
	if !IsValidLatitude(42.33) || IsValidLatitude(91) || IsValidLatitude(-90.5) {
		t.Error("latitude range check failed")
	}
	if !IsValidLongitude(-83.05) || IsValidLongitude(181) || IsValidLongitude(-180.5) {
		t.Error("longitude range check failed")
	}
}
