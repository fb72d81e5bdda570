package repositories

import (
	"errors"
	"fmt"

	"marathon-backend/db/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type EventRepository interface {
	CreateEvent(event *models.Event) error
	GetEventByID(id uint) (*models.Event, error)
	GetEventByName(name string) (*models.Event, error)
	GetEventByNameAndDate(name string, date models.DateOnly) (*models.Event, error)
	GetActiveEvents() ([]models.Event, error)

	CreateCategory(category *models.Category) error
	GetCategoryByID(id uint) (*models.Category, error)
	GetCategoryByName(name string, eventID uint) (*models.Category, error)
	GetActiveCategories(eventID uint) ([]models.Category, error)

	CreateParticipationOption(option *models.ParticipationOption) error
	ParticipationOptionExists(eventID, categoryID uint, km decimal.Decimal, excludeID uint) (bool, error)
	GetParticipationOptionByID(id uint) (*models.ParticipationOption, error)
	GetAllParticipationOptions() ([]models.ParticipationOption, error)
	GetActiveParticipationOptions(eventID uint) ([]models.ParticipationOption, error)
	UpdateParticipationOption(option *models.ParticipationOption) error
	DeleteParticipationOption(id uint) error
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{
		db: db,
	}
}

func (r *eventRepository) CreateEvent(event *models.Event) error {
	return r.db.Create(event).Error
}

func (r *eventRepository) GetEventByID(id uint) (*models.Event, error) {
	var event models.Event
	err := r.db.First(&event, "event_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("event %d not found", id)
		}
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) GetEventByName(name string) (*models.Event, error) {
	var event models.Event
	err := r.db.First(&event, "event_name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("event '%s' not found", name)
		}
		return nil, err
	}
	return &event, nil
}

// GetEventByNameAndDate backs the duplicate check on event creation; the
// same name on a different date is a different occurrence and is allowed.
func (r *eventRepository) GetEventByNameAndDate(name string, date models.DateOnly) (*models.Event, error) {
	var event models.Event
	err := r.db.First(&event, "event_name = ? AND event_date = ?", name, date).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) GetActiveEvents() ([]models.Event, error) {
	var events []models.Event
	err := r.db.Where("is_active = ?", true).
		Order("event_date DESC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) CreateCategory(category *models.Category) error {
	return r.db.Create(category).Error
}

func (r *eventRepository) GetCategoryByID(id uint) (*models.Category, error) {
	var category models.Category
	err := r.db.First(&category, "category_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("category %d not found", id)
		}
		return nil, err
	}
	return &category, nil
}

func (r *eventRepository) GetCategoryByName(name string, eventID uint) (*models.Category, error) {
	var category models.Category
	err := r.db.First(&category, "category_name = ? AND event_id = ?", name, eventID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("category '%s' not found for event %d", name, eventID)
		}
		return nil, err
	}
	return &category, nil
}

func (r *eventRepository) GetActiveCategories(eventID uint) ([]models.Category, error) {
	var categories []models.Category
	db := r.db.Where("is_active = ?", true)
	if eventID != 0 {
		db = db.Where("event_id = ?", eventID)
	}
	if err := db.Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *eventRepository) CreateParticipationOption(option *models.ParticipationOption) error {
	return r.db.Create(option).Error
}

// ParticipationOptionExists is the application-level uniqueness check for
// the (event, category, km) triple. There is no unique index backing it;
// the check and the insert that follows it run as separate statements.
// excludeID lets an update skip its own row.
func (r *eventRepository) ParticipationOptionExists(eventID, categoryID uint, km decimal.Decimal, excludeID uint) (bool, error) {
	var count int64
	db := r.db.Model(&models.ParticipationOption{}).
		Where("event_id = ? AND category_id = ? AND km = ?", eventID, categoryID, km)
	if excludeID != 0 {
		db = db.Where("participateinid <> ?", excludeID)
	}
	if err := db.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *eventRepository) GetParticipationOptionByID(id uint) (*models.ParticipationOption, error) {
	var option models.ParticipationOption
	err := r.db.First(&option, "participateinid = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("participation option %d not found", id)
		}
		return nil, err
	}
	return &option, nil
}

func (r *eventRepository) GetAllParticipationOptions() ([]models.ParticipationOption, error) {
	var options []models.ParticipationOption
	if err := r.db.Order("entry_date DESC").Find(&options).Error; err != nil {
		return nil, err
	}
	return options, nil
}

func (r *eventRepository) GetActiveParticipationOptions(eventID uint) ([]models.ParticipationOption, error) {
	var options []models.ParticipationOption
	db := r.db.Where("isactive = ?", true)
	if eventID != 0 {
		db = db.Where("event_id = ?", eventID)
	}
	if err := db.Order("km ASC").Find(&options).Error; err != nil {
		return nil, err
	}
	return options, nil
}

func (r *eventRepository) UpdateParticipationOption(option *models.ParticipationOption) error {
	return r.db.Save(option).Error
}

func (r *eventRepository) DeleteParticipationOption(id uint) error {
	result := r.db.Delete(&models.ParticipationOption{}, "participateinid = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("participation option %d not found", id)
	}
	return nil
}
