package services

import "testing"

func TestNormalizeTime(t *testing.T) {
	tests := []struct {
		input    string
		expected string // "" means nil
		desc     string
	}{
		// Already canonical
		{"01:23:45", "01:23:45", "strict HH:MM:SS passes through unchanged"},
		{"00:00:00", "00:00:00", "midnight"},
		{"23:59:59", "23:59:59", "end of day"},

		// Spreadsheet date-serial fractions
		{"0.5", "12:00:00", "half a day is noon"},
		{"0.25", "06:00:00", "quarter day"},
		{"0", "", "numeric zero is absent, not midnight"},
		{"0.0", "", "fractional zero is absent too"},

		// Colon-separated shapes needing padding
		{"9:5", "09:05:00", "single digits padded, seconds defaulted"},
		{"9:5:7", "09:05:07", "three single-digit parts"},
		{"12:30", "12:30:00", "missing seconds"},
		{"1:02:", "01:02:00", "trailing empty seconds"},

		// Unrecognizable
		{"", "", "empty cell"},
		{"abc", "", "garbage text"},
		{"12.30.00", "", "dot-separated"},
	}

	for _, test := range tests {
		got := NormalizeTime(test.input)
		if test.expected == "" {
			if got != nil {
				t.Errorf("NormalizeTime(%q) = %q, expected nil (%s)", test.input, *got, test.desc)
			}
			continue
		}
		if got == nil {
			t.Errorf("NormalizeTime(%q) = nil, expected %q (%s)", test.input, test.expected, test.desc)
			continue
		}
		if *got != test.expected {
			t.Errorf("NormalizeTime(%q) = %q, expected %q (%s)", test.input, *got, test.expected, test.desc)
		}
	}
}

func TestIsStrictTime(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"01:23:45", true},
		{"9:5:7", false},
		{"12:30", false},
		{"0.5", false},
		{"", false},
	}

	for _, test := range tests {
		if got := IsStrictTime(test.input); got != test.expected {
			t.Errorf("IsStrictTime(%q) = %v, expected %v", test.input, got, test.expected)
		}
	}
}
