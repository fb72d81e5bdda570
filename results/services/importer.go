package services

import (
	"errors"
	"fmt"

	"marathon-backend/db/models"

	"github.com/google/uuid"
)

// ResultImportStore is the slice of the persistence layer the import needs.
type ResultImportStore interface {
	BibNumberExists(bibNumber string) (bool, error)
	CreateResult(result *models.Result) error
}

// ImportReport aggregates the per-row outcomes of one upload.
// SuccessCount + ErrorCount always equals TotalRows.
type ImportReport struct {
	TotalRows    int
	SuccessCount int
	ErrorCount   int
	Errors       []string
	FailedRows   []models.BulkUploadErrorResult
}

// ImportResultRows drives the bulk import over the raw sheet rows
// (rows[0] is the header). Rows are processed strictly in order so a
// duplicate bib later in the file sees earlier inserts. A failing row is
// recorded and skipped, never aborting the remainder; the bib uniqueness
// check and the insert are separate statements, so two concurrent uploads
// racing on the same bib can both pass the check.
func ImportResultRows(rows [][]string, store ResultImportStore, enteredBy uint, createdBy string) ImportReport {
	report := ImportReport{}
	if len(rows) == 0 {
		return report
	}

	idx := IndexHeader(rows[0])
	report.TotalRows = len(rows) - 1

	for i, row := range rows[1:] {
		rowNumber := i + 2 // 1-based, +1 for the header row

		result, err := ValidateResultRow(idx, row, rowNumber)
		if err != nil {
			recordFailure(&report, idx, row, rowNumber, err, createdBy)
			continue
		}

		exists, err := store.BibNumberExists(result.BibNumber)
		if err != nil {
			recordFailure(&report, idx, row, rowNumber,
				&RowValidationError{RowNumber: rowNumber, Reason: err.Error(), ErrorType: models.SystemErrorType},
				createdBy)
			continue
		}
		if exists {
			recordFailure(&report, idx, row, rowNumber,
				&RowValidationError{
					RowNumber: rowNumber,
					Reason:    fmt.Sprintf("Bib number '%s' already exists", result.BibNumber),
					ErrorType: models.DuplicateErrorType,
				},
				createdBy)
			continue
		}

		result.EnteredBy = enteredBy
		if err := store.CreateResult(result); err != nil {
			recordFailure(&report, idx, row, rowNumber,
				&RowValidationError{RowNumber: rowNumber, Reason: err.Error(), ErrorType: models.SystemErrorType},
				createdBy)
			continue
		}

		report.SuccessCount++
	}

	return report
}

func recordFailure(report *ImportReport, idx HeaderIndex, row []string, rowNumber int, err error, createdBy string) {
	report.ErrorCount++
	report.Errors = append(report.Errors, err.Error())

	errorType := models.SystemErrorType
	reason := err.Error()
	var rowErr *RowValidationError
	if errors.As(err, &rowErr) {
		errorType = rowErr.ErrorType
		reason = rowErr.Reason
	}

	report.FailedRows = append(report.FailedRows, models.BulkUploadErrorResult{
		ID:        uuid.New(),
		RowNumber: rowNumber,
		BibNumber: idx.Cell(row, bibHeaderAliases...),
		Name:      idx.Cell(row, "Name"),
		Gender:    idx.Cell(row, "Gender"),
		EventID:   idx.Cell(row, "Event ID"),
		Reason:    reason,
		ErrorType: errorType,
		AddedVia:  models.BulkAddedViaType,
		CreatedBy: createdBy,
	})
}
