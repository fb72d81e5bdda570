package services

import (
	"fmt"
	"strconv"

	"marathon-backend/db/models"
	"marathon-backend/utils"
)

// bibHeaderAliases are the spellings of the bib column seen across timing
// contractors' export templates.
var bibHeaderAliases = []string{"Bib No", "BibNo", "Bib Number"}

// HeaderIndex maps column headers (exact, case- and spacing-sensitive) to
// their position in the sheet.
type HeaderIndex map[string]int

// IndexHeader builds a HeaderIndex from the first row of a sheet.
func IndexHeader(header []string) HeaderIndex {
	idx := make(HeaderIndex, len(header))
	for i, name := range header {
		if _, taken := idx[name]; !taken {
			idx[name] = i
		}
	}
	return idx
}

// Cell returns the raw value for the first matching header name, or ""
// when the column is absent or the row is short.
func (idx HeaderIndex) Cell(row []string, names ...string) string {
	for _, name := range names {
		if i, ok := idx[name]; ok && i < len(row) {
			if row[i] != "" {
				return row[i]
			}
		}
	}
	return ""
}

// RowValidationError rejects a single imported row. The Reason is shown to
// the uploader verbatim, prefixed with the sheet row number (1-based, +1
// for the header row).
type RowValidationError struct {
	RowNumber int
	Reason    string
	ErrorType models.BulkUploadErrorType
}

func (e *RowValidationError) Error() string {
	return fmt.Sprintf("Row %d: %s", e.RowNumber, e.Reason)
}

// ValidateResultRow maps one sheet row onto a Result. Only the presence of
// the required fields and the gender enum reject a row; every time-shaped
// field runs through NormalizeTime and silently becomes null when
// unrecognizable.
func ValidateResultRow(idx HeaderIndex, row []string, rowNumber int) (*models.Result, error) {
	bibNumber := idx.Cell(row, bibHeaderAliases...)
	name := idx.Cell(row, "Name")
	gender := idx.Cell(row, "Gender")
	eventID := idx.Cell(row, "Event ID")

	if bibNumber == "" || name == "" || gender == "" || eventID == "" {
		return nil, &RowValidationError{
			RowNumber: rowNumber,
			Reason:    "Missing required fields (Bib No, Name, Gender, Event ID)",
			ErrorType: models.MissingDataErrorType,
		}
	}

	if !models.ValidGender(models.Gender(gender)) {
		return nil, &RowValidationError{
			RowNumber: rowNumber,
			Reason:    fmt.Sprintf("Invalid gender '%s'", gender),
			ErrorType: models.ValidationErrorType,
		}
	}

	parsedEventID, err := strconv.ParseUint(eventID, 10, 64)
	if err != nil {
		return nil, &RowValidationError{
			RowNumber: rowNumber,
			Reason:    fmt.Sprintf("Invalid event ID '%s'", eventID),
			ErrorType: models.ValidationErrorType,
		}
	}

	result := &models.Result{
		RegistrationID: parseOptionalUint(idx.Cell(row, "Registration ID")),
		BibNumber:      bibNumber,
		Name:           name,
		StartTime:      NormalizeTime(idx.Cell(row, "Start Time")),
		FinishTime:     NormalizeTime(idx.Cell(row, "Finish Time")),
		RaceTime:       NormalizeTime(idx.Cell(row, "Race Time")),
		CP1:            utils.StringOrNil(idx.Cell(row, "CP1")),
		CP1Time:        NormalizeTime(idx.Cell(row, "CP1 Time")),
		CP2:            utils.StringOrNil(idx.Cell(row, "CP2")),
		CP2Time:        NormalizeTime(idx.Cell(row, "CP2 Time")),
		CP3:            utils.StringOrNil(idx.Cell(row, "CP3")),
		CP3Time:        NormalizeTime(idx.Cell(row, "CP3 Time")),
		CP4:            utils.StringOrNil(idx.Cell(row, "CP4")),
		CP4Time:        NormalizeTime(idx.Cell(row, "CP4 Time")),
		CP5:            utils.StringOrNil(idx.Cell(row, "CP5")),
		CP5Time:        NormalizeTime(idx.Cell(row, "CP5 Time")),
		Age:            parseOptionalInt(idx.Cell(row, "Age")),
		Gender:         models.Gender(gender),
		ParticipateIn:  utils.StringOrNil(idx.Cell(row, "Participate In")),
		CategoryID:     parseOptionalUint(idx.Cell(row, "Category ID")),
		City:           utils.StringOrNil(idx.Cell(row, "City")),
		RFID1:          utils.StringOrNil(idx.Cell(row, "RFID 1")),
		RFID2:          utils.StringOrNil(idx.Cell(row, "RFID 2")),
		EventID:        uint(parsedEventID),
		CStartTime:     NormalizeTime(idx.Cell(row, "CStart Time")),
		CRaceTime:      NormalizeTime(idx.Cell(row, "CRace Time")),
		ImageID:        utils.StringOrNil(idx.Cell(row, "Image ID")),
		IsActive:       true,
	}

	return result, nil
}

// Optional numeric cells degrade to null on bad input, same as the time fields.
func parseOptionalUint(raw string) *uint {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil
	}
	u := uint(v)
	return &u
}

func parseOptionalInt(raw string) *int {
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}
