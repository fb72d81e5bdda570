package models

import (
	"time"

	"github.com/google/uuid"
)

type BulkUploadErrorType string

const (
	DuplicateErrorType   BulkUploadErrorType = "Duplicate"
	MissingDataErrorType BulkUploadErrorType = "MissingData"
	ValidationErrorType  BulkUploadErrorType = "Validation"
	SystemErrorType      BulkUploadErrorType = "System"
)

type AddedViaType string

const (
	BulkAddedViaType   AddedViaType = "Bulk"
	SingleAddedViaType AddedViaType = "Single"
)

// BulkUploadErrorResult records one rejected row from a results workbook
// upload. Kept for the emailed error report and for operator review; the
// upload itself never fails because of these.
type BulkUploadErrorResult struct {
	ID        uuid.UUID           `gorm:"type:uuid;primary_key;" json:"id"`
	RowNumber int                 `json:"row_number"`
	BibNumber string              `json:"bib_number"`
	Name      string              `json:"name"`
	Gender    string              `json:"gender"`
	EventID   string              `json:"event_id"`
	Reason    string              `json:"reason"`
	ErrorType BulkUploadErrorType `json:"error_type"`
	AddedVia  AddedViaType        `json:"added_via"`
	CreatedBy string              `json:"created_by"`
	CreatedAt time.Time           `gorm:"autoCreateTime" json:"created_at"`
}
