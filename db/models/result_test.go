package models

import (
	"reflect"
	"strings"
	"testing"
)

func TestValidGender(t *testing.T) {
	for _, g := range []Gender{MaleGender, FemaleGender, OthersGender} {
		if !ValidGender(g) {
			t.Errorf("ValidGender(%q) = false, expected true", g)
		}
	}
	for _, g := range []Gender{"M", "male", "FEMALE", "other", ""} {
		if ValidGender(g) {
			t.Errorf("ValidGender(%q) = true, expected false", g)
		}
	}
}

// Bib uniqueness lives in the pre-insert check, not in the schema. A
// unique constraint here would close the double-insert window the import
// path knowingly carries, and change what concurrent uploads observe.
func TestResultBibColumnHasNoUniqueConstraint(t *testing.T) {
	field, ok := reflect.TypeOf(Result{}).FieldByName("BibNumber")
	if !ok {
		t.Fatal("Result has no BibNumber field")
	}
	tag := field.Tag.Get("gorm")
	if !strings.Contains(tag, "column:bibno") {
		t.Errorf("gorm tag %q should map to the bibno column", tag)
	}
	for _, part := range strings.Split(tag, ";") {
		if part == "unique" || strings.HasPrefix(part, "unique") {
			t.Errorf("gorm tag %q declares a unique constraint on bibno", tag)
		}
	}
}
