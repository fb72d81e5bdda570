package repositories

import (
	"errors"
	"fmt"

	"marathon-backend/db/models"

	"gorm.io/gorm"
)

type RegistrationRepository interface {
	HasRegistrationForEvent(enteredBy string, eventID uint) (bool, error)
	CreateRegistration(registration *models.Registration) error
	SetBibNumber(id uint, bibNumber string) error
	GetAllRegistrations() ([]models.Registration, error)
	GetRegistrationsByEnteredBy(enteredBy string) ([]models.Registration, error)
	GetRegistrationByID(id uint) (*models.Registration, error)
	UpdateRegistration(registration *models.Registration) error
	DeleteRegistration(id uint) error
}

type registrationRepository struct {
	db *gorm.DB
}

func NewRegistrationRepository(db *gorm.DB) RegistrationRepository {
	return &registrationRepository{
		db: db,
	}
}

// HasRegistrationForEvent keys the duplicate check on who submitted the
// form, not on the registrant's own details.
func (r *registrationRepository) HasRegistrationForEvent(enteredBy string, eventID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Registration{}).
		Where("entryby = ? AND event_id = ?", enteredBy, eventID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *registrationRepository) CreateRegistration(registration *models.Registration) error {
	return r.db.Create(registration).Error
}

func (r *registrationRepository) SetBibNumber(id uint, bibNumber string) error {
	return r.db.Model(&models.Registration{}).
		Where("id = ?", id).
		Update("bibno", bibNumber).Error
}

func (r *registrationRepository) GetAllRegistrations() ([]models.Registration, error) {
	var registrations []models.Registration
	if err := r.db.Order("entrydate DESC").Find(&registrations).Error; err != nil {
		return nil, err
	}
	return registrations, nil
}

func (r *registrationRepository) GetRegistrationsByEnteredBy(enteredBy string) ([]models.Registration, error) {
	var registrations []models.Registration
	err := r.db.Where("entryby = ?", enteredBy).
		Order("entrydate DESC").
		Find(&registrations).Error
	if err != nil {
		return nil, err
	}
	return registrations, nil
}

func (r *registrationRepository) GetRegistrationByID(id uint) (*models.Registration, error) {
	var registration models.Registration
	err := r.db.First(&registration, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("registration %d not found", id)
		}
		return nil, err
	}
	return &registration, nil
}

func (r *registrationRepository) UpdateRegistration(registration *models.Registration) error {
	return r.db.Save(registration).Error
}

func (r *registrationRepository) DeleteRegistration(id uint) error {
	return r.db.Delete(&models.Registration{}, id).Error
}
