package services

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var strictTimeRe = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}$`)

// IsStrictTime reports whether s is a zero-padded 24-hour "HH:MM:SS" string.
// The single-record add/update path only accepts this form.
func IsStrictTime(s string) bool {
	return strictTimeRe.MatchString(s)
}

// NormalizeTime converts the time shapes that show up in timing spreadsheets
// into canonical "HH:MM:SS", or nil when the cell is empty or unrecognizable.
// Numeric cells are treated as a fraction of a day (the spreadsheet
// date-serial convention, 0.5 = noon). Unrecognizable values intentionally
// come back nil rather than erroring: a row with a mangled split time still
// imports, it just loses that field.
func NormalizeTime(raw string) *string {
	if raw == "" {
		return nil
	}

	if strictTimeRe.MatchString(raw) {
		return &raw
	}

	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		// A zero cell is treated as absent, not midnight
		if f == 0 {
			return nil
		}
		hours := int(math.Floor(f * 24))
		minutes := int(math.Floor(f*24*60)) % 60
		seconds := int(math.Floor(f*24*60*60)) % 60
		formatted := fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
		return &formatted
	}

	parts := strings.Split(raw, ":")
	if len(parts) >= 2 {
		hours := padTwo(parts[0])
		minutes := padTwo(parts[1])
		seconds := "00"
		if len(parts) > 2 && parts[2] != "" {
			seconds = padTwo(parts[2])
		}
		formatted := fmt.Sprintf("%s:%s:%s", hours, minutes, seconds)
		return &formatted
	}

	return nil
}

func padTwo(s string) string {
	for len(s) < 2 {
		s = "0" + s
	}
	return s
}
