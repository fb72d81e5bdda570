package services

import (
	"errors"
	"strings"
	"testing"

	"marathon-backend/db/models"
)

type fakeResultStore struct {
	existing  map[string]bool
	created   []*models.Result
	createErr error
	existsErr error
}

func newFakeResultStore(existingBibs ...string) *fakeResultStore {
	existing := make(map[string]bool)
	for _, bib := range existingBibs {
		existing[bib] = true
	}
	return &fakeResultStore{existing: existing}
}

func (s *fakeResultStore) BibNumberExists(bibNumber string) (bool, error) {
	if s.existsErr != nil {
		return false, s.existsErr
	}
	return s.existing[bibNumber], nil
}

func (s *fakeResultStore) CreateResult(result *models.Result) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.created = append(s.created, result)
	s.existing[result.BibNumber] = true
	return nil
}

func importRows(dataRows ...[]string) [][]string {
	rows := [][]string{{"Bib No", "Name", "Gender", "Event ID"}}
	return append(rows, dataRows...)
}

func TestImportResultRows_PartialSuccess(t *testing.T) {
	store := newFakeResultStore()
	rows := importRows(
		[]string{"101", "Asha", "Female", "1"},
		[]string{"", "Rahul", "Male", "1"},      // missing bib
		[]string{"103", "Priya", "female", "1"}, // bad gender case
		[]string{"104", "Vikram", "Male", "1"},
	)

	report := ImportResultRows(rows, store, 7, "admin@example.com")

	if report.TotalRows != 4 {
		t.Errorf("total = %d, expected 4", report.TotalRows)
	}
	if report.SuccessCount != 2 {
		t.Errorf("successes = %d, expected 2", report.SuccessCount)
	}
	if report.ErrorCount != 2 {
		t.Errorf("errors = %d, expected 2", report.ErrorCount)
	}
	if report.SuccessCount+report.ErrorCount != report.TotalRows {
		t.Errorf("success %d + error %d != total %d", report.SuccessCount, report.ErrorCount, report.TotalRows)
	}
	if len(store.created) != 2 {
		t.Fatalf("created %d rows, expected 2", len(store.created))
	}
	if store.created[0].EnteredBy != 7 {
		t.Errorf("entered by = %d, expected 7", store.created[0].EnteredBy)
	}
}

func TestImportResultRows_RowNumbersSkipHeader(t *testing.T) {
	store := newFakeResultStore()
	rows := importRows(
		[]string{"101", "Asha", "Female", "1"},
		[]string{"", "", "", ""},
	)

	report := ImportResultRows(rows, store, 1, "admin@example.com")

	if len(report.Errors) != 1 {
		t.Fatalf("expected one error, got %v", report.Errors)
	}
	// First data row is sheet row 2, so the bad one is row 3
	if !strings.HasPrefix(report.Errors[0], "Row 3:") {
		t.Errorf("error %q should reference row 3", report.Errors[0])
	}
	if report.FailedRows[0].RowNumber != 3 {
		t.Errorf("failed row number = %d, expected 3", report.FailedRows[0].RowNumber)
	}
}

func TestImportResultRows_DuplicateBib(t *testing.T) {
	store := newFakeResultStore("101")
	rows := importRows(
		[]string{"101", "Asha", "Female", "1"},
		[]string{"102", "Rahul", "Male", "1"},
		[]string{"102", "Rahul Again", "Male", "1"}, // duplicate within the file
	)

	report := ImportResultRows(rows, store, 1, "admin@example.com")

	if report.SuccessCount != 1 {
		t.Errorf("successes = %d, expected 1", report.SuccessCount)
	}
	if report.ErrorCount != 2 {
		t.Errorf("errors = %d, expected 2", report.ErrorCount)
	}
	if len(store.created) != 1 {
		t.Fatalf("created %d rows, expected 1", len(store.created))
	}
	if !strings.Contains(report.Errors[0], "Bib number '101' already exists") {
		t.Errorf("error %q should name the duplicate bib", report.Errors[0])
	}
	// Rows run in order, so the second 102 sees the first one's insert
	if !strings.Contains(report.Errors[1], "Bib number '102' already exists") {
		t.Errorf("error %q should flag the in-file duplicate", report.Errors[1])
	}
	if report.FailedRows[0].ErrorType != models.DuplicateErrorType {
		t.Errorf("error type = %q, expected %q", report.FailedRows[0].ErrorType, models.DuplicateErrorType)
	}
}

func TestImportResultRows_NeverAborts(t *testing.T) {
	store := newFakeResultStore()
	store.createErr = errors.New("connection reset")

	rows := importRows(
		[]string{"101", "Asha", "Female", "1"},
		[]string{"102", "Rahul", "Male", "1"},
	)

	report := ImportResultRows(rows, store, 1, "admin@example.com")

	if report.SuccessCount != 0 {
		t.Errorf("successes = %d, expected 0", report.SuccessCount)
	}
	if report.ErrorCount != 2 {
		t.Errorf("errors = %d, expected 2; an insert failure must not stop the import", report.ErrorCount)
	}
	for _, failed := range report.FailedRows {
		if failed.ErrorType != models.SystemErrorType {
			t.Errorf("error type = %q, expected %q", failed.ErrorType, models.SystemErrorType)
		}
		if failed.AddedVia != models.BulkAddedViaType {
			t.Errorf("added via = %q, expected %q", failed.AddedVia, models.BulkAddedViaType)
		}
		if failed.CreatedBy != "admin@example.com" {
			t.Errorf("created by = %q, expected the uploader", failed.CreatedBy)
		}
	}
}

// The uniqueness check and the insert are separate statements. Two uploads
// racing on the same bib can both pass the check before either inserts;
// nothing below the application enforces the constraint.
func TestImportResultRows_CheckThenInsertWindow(t *testing.T) {
	store := newFakeResultStore()

	first := ImportResultRows(importRows([]string{"500", "Asha", "Female", "1"}), store, 1, "a@example.com")
	if first.SuccessCount != 1 {
		t.Fatalf("first upload: successes = %d, expected 1", first.SuccessCount)
	}

	// A second upload of the same bib is caught only because the first
	// insert already landed. Had both checks run before either insert,
	// both rows would have been created.
	second := ImportResultRows(importRows([]string{"500", "Asha", "Female", "1"}), store, 1, "b@example.com")
	if second.ErrorCount != 1 {
		t.Fatalf("second upload: errors = %d, expected 1", second.ErrorCount)
	}
	if second.FailedRows[0].ErrorType != models.DuplicateErrorType {
		t.Errorf("error type = %q, expected %q", second.FailedRows[0].ErrorType, models.DuplicateErrorType)
	}
}

func TestImportResultRows_EmptyInput(t *testing.T) {
	report := ImportResultRows(nil, newFakeResultStore(), 1, "a@example.com")
	if report.TotalRows != 0 || report.SuccessCount != 0 || report.ErrorCount != 0 {
		t.Errorf("empty input produced a non-empty report: %+v", report)
	}
}
