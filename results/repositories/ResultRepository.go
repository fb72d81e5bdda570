package repositories

import (
	"errors"
	"fmt"

	"marathon-backend/db/models"

	"gorm.io/gorm"
)

type ResultRepository interface {
	BibNumberExists(bibNumber string) (bool, error)
	CreateResult(result *models.Result) error
	GetActiveResultByID(id uint) (*models.Result, error)
	GetResultByID(id uint) (*models.Result, error)
	GetFilteredResults(filters map[string]string) ([]models.Result, error)
	UpdateResult(result *models.Result) error
	DeleteResult(id uint) error
	LogBulkUploadErrors(rows []models.BulkUploadErrorResult) error
	LogEmailSent(emailLog *models.EmailLog) error
}

type resultRepository struct {
	db *gorm.DB
}

func NewResultRepository(db *gorm.DB) ResultRepository {
	return &resultRepository{
		db: db,
	}
}

// BibNumberExists checks the whole table, active or not. The check and
// the subsequent insert are separate statements with no transaction
// around them.
func (r *resultRepository) BibNumberExists(bibNumber string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Result{}).Where("bibno = ?", bibNumber).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *resultRepository) CreateResult(result *models.Result) error {
	return r.db.Create(result).Error
}

// GetActiveResultByID returns an active result or a descriptive error.
func (r *resultRepository) GetActiveResultByID(id uint) (*models.Result, error) {
	var result models.Result
	err := r.db.First(&result, "id = ? AND isactive = ?", id, true).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("result %d not found or has been deleted", id)
		}
		return nil, err
	}
	return &result, nil
}

// GetResultByID returns the row regardless of its active flag; deletion is
// hard and must find soft-disabled rows too.
func (r *resultRepository) GetResultByID(id uint) (*models.Result, error) {
	var result models.Result
	err := r.db.First(&result, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("result %d not found", id)
		}
		return nil, err
	}
	return &result, nil
}

func (r *resultRepository) GetFilteredResults(filters map[string]string) ([]models.Result, error) {
	var results []models.Result

	db := r.db.Model(&models.Result{}).Where("isactive = ?", true)

	for key, value := range filters {
		if value == "" {
			continue
		}
		switch key {
		case "year":
			db = db.Where("EXTRACT(YEAR FROM entrydate) = ?", value)
		case "gender":
			db = db.Where("gender = ?", value)
		case "eventId":
			db = db.Where("event_id = ?", value)
		}
	}

	if err := db.Order("entrydate DESC").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *resultRepository) UpdateResult(result *models.Result) error {
	return r.db.Save(result).Error
}

func (r *resultRepository) DeleteResult(id uint) error {
	return r.db.Delete(&models.Result{}, id).Error
}

func (r *resultRepository) LogBulkUploadErrors(rows []models.BulkUploadErrorResult) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.Create(&rows).Error
}

func (r *resultRepository) LogEmailSent(emailLog *models.EmailLog) error {
	return r.db.Create(emailLog).Error
}
