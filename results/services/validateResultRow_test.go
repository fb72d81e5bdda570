package services

import (
	"errors"
	"strings"
	"testing"

	"marathon-backend/db/models"
)

func resultHeader() []string {
	return []string{"Bib No", "Name", "Gender", "Event ID", "Race Time", "Start Time", "Age"}
}

func TestValidateResultRow_MissingRequiredFields(t *testing.T) {
	idx := IndexHeader(resultHeader())

	tests := []struct {
		row  []string
		desc string
	}{
		{[]string{"", "Asha", "Female", "1"}, "missing bib"},
		{[]string{"101", "", "Female", "1"}, "missing name"},
		{[]string{"101", "Asha", "", "1"}, "missing gender"},
		{[]string{"101", "Asha", "Female", ""}, "missing event id"},
		{[]string{"101"}, "short row"},
	}

	for _, test := range tests {
		_, err := ValidateResultRow(idx, test.row, 2)
		if err == nil {
			t.Errorf("%s: expected an error", test.desc)
			continue
		}
		var rowErr *RowValidationError
		if !errors.As(err, &rowErr) {
			t.Errorf("%s: expected RowValidationError, got %T", test.desc, err)
			continue
		}
		if rowErr.ErrorType != models.MissingDataErrorType {
			t.Errorf("%s: error type = %q, expected %q", test.desc, rowErr.ErrorType, models.MissingDataErrorType)
		}
		if rowErr.Reason != "Missing required fields (Bib No, Name, Gender, Event ID)" {
			t.Errorf("%s: unexpected reason %q", test.desc, rowErr.Reason)
		}
	}
}

func TestValidateResultRow_GenderEnum(t *testing.T) {
	idx := IndexHeader(resultHeader())

	// The enum is exact and case-sensitive
	for _, gender := range []string{"Male", "Female", "Others"} {
		_, err := ValidateResultRow(idx, []string{"101", "Asha", gender, "1"}, 2)
		if err != nil {
			t.Errorf("gender %q rejected: %v", gender, err)
		}
	}

	for _, gender := range []string{"M", "male", "FEMALE", "other"} {
		_, err := ValidateResultRow(idx, []string{"101", "Asha", gender, "1"}, 2)
		if err == nil {
			t.Errorf("gender %q accepted, expected rejection", gender)
			continue
		}
		var rowErr *RowValidationError
		if !errors.As(err, &rowErr) || rowErr.ErrorType != models.ValidationErrorType {
			t.Errorf("gender %q: expected a validation error, got %v", gender, err)
			continue
		}
		if !strings.Contains(rowErr.Reason, gender) {
			t.Errorf("gender %q: reason %q does not name the value", gender, rowErr.Reason)
		}
	}
}

func TestValidateResultRow_BibHeaderAliases(t *testing.T) {
	for _, alias := range []string{"Bib No", "BibNo", "Bib Number"} {
		idx := IndexHeader([]string{alias, "Name", "Gender", "Event ID"})
		result, err := ValidateResultRow(idx, []string{"205", "Rahul", "Male", "3"}, 2)
		if err != nil {
			t.Fatalf("alias %q: %v", alias, err)
		}
		if result.BibNumber != "205" {
			t.Errorf("alias %q: bib = %q, expected %q", alias, result.BibNumber, "205")
		}
	}
}

func TestValidateResultRow_LenientOptionalFields(t *testing.T) {
	idx := IndexHeader(resultHeader())

	// A mangled race time or age silently becomes null, the row still imports
	result, err := ValidateResultRow(idx, []string{"101", "Asha", "Female", "1", "garbage", "0.5", "forty"}, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.RaceTime != nil {
		t.Errorf("race time = %q, expected nil", *result.RaceTime)
	}
	if result.StartTime == nil || *result.StartTime != "12:00:00" {
		t.Errorf("start time = %v, expected 12:00:00", result.StartTime)
	}
	if result.Age != nil {
		t.Errorf("age = %d, expected nil", *result.Age)
	}
	if result.EventID != 1 {
		t.Errorf("event id = %d, expected 1", result.EventID)
	}
	if !result.IsActive {
		t.Error("imported rows should be active")
	}
}

func TestValidateResultRow_InvalidEventID(t *testing.T) {
	idx := IndexHeader(resultHeader())

	_, err := ValidateResultRow(idx, []string{"101", "Asha", "Female", "abc"}, 5)
	if err == nil {
		t.Fatal("expected an error for a non-numeric event id")
	}
	var rowErr *RowValidationError
	if !errors.As(err, &rowErr) {
		t.Fatalf("expected RowValidationError, got %T", err)
	}
	if rowErr.ErrorType != models.ValidationErrorType {
		t.Errorf("error type = %q, expected %q", rowErr.ErrorType, models.ValidationErrorType)
	}
	if err.Error() != "Row 5: Invalid event ID 'abc'" {
		t.Errorf("unexpected message %q", err.Error())
	}
}
