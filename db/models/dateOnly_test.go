package models

import (
	"testing"
	"time"
)

func TestDateOnlyJSONRoundTrip(t *testing.T) {
	var d DateOnly
	if err := d.UnmarshalJSON([]byte(`"2026-11-15"`)); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	out, err := d.MarshalJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `"2026-11-15"` {
		t.Errorf("marshal = %s, expected %q", out, "2026-11-15")
	}

	if err := d.UnmarshalJSON([]byte(`"15-11-2026"`)); err == nil {
		t.Error("expected an error for a non-ISO date")
	}
}

func TestDateOnlyScanAndValue(t *testing.T) {
	var d DateOnly

	if err := d.Scan(time.Date(2026, 2, 15, 13, 45, 0, 0, time.UTC)); err != nil {
		t.Fatalf("scan time.Time: %v", err)
	}
	v, err := d.Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}
	// The time component is dropped on the way to the database
	if v != "2026-02-15" {
		t.Errorf("value = %v, expected %q", v, "2026-02-15")
	}

	if err := d.Scan("2027-01-01"); err != nil {
		t.Fatalf("scan string: %v", err)
	}
	if got := time.Time(d).Year(); got != 2027 {
		t.Errorf("year = %d, expected 2027", got)
	}

	if err := d.Scan(nil); err != nil {
		t.Fatalf("scan nil: %v", err)
	}
	if !time.Time(d).IsZero() {
		t.Error("nil scan should leave the zero date")
	}

	if err := d.Scan(42); err == nil {
		t.Error("expected an error for an unsupported scan type")
	}
}
