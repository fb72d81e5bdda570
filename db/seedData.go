package db

import (
	"time"

	"marathon-backend/db/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SeedInitialEvent populates the database with a first event, its age
// categories and the selectable distances so a fresh install has something
// to register against. Safe to run repeatedly.
func SeedInitialEvent(db *gorm.DB, enteredBy string) error {
	eventDate := time.Date(time.Now().Year()+1, time.February, 15, 0, 0, 0, 0, time.UTC)

	event := models.Event{
		EventName:        "City Marathon",
		EventDate:        models.DateOnly(eventDate),
		EventYear:        eventDate.Year(),
		EventType:        "Marathon",
		EventDescription: "Annual city marathon with full, half and fun-run distances.",
		Location:         "City Stadium",
		Time:             "06:00",
		IsActive:         true,
		EnteredBy:        enteredBy,
		UpdatedBy:        enteredBy,
	}

	var existingEvent models.Event
	err := db.Where("event_name = ? AND event_date = ?", event.EventName, event.EventDate).
		First(&existingEvent).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return err
		}
		if err := db.Create(&event).Error; err != nil {
			return err
		}
		existingEvent = event
	}

	categories := []models.Category{
		{CategoryName: "Open", CategoryDescription: "Open category", FromAge: 18, ToAge: 44, EventID: existingEvent.ID, IsActive: true, EnteredBy: enteredBy},
		{CategoryName: "Veteran", CategoryDescription: "Veteran category", FromAge: 45, ToAge: 99, EventID: existingEvent.ID, IsActive: true, EnteredBy: enteredBy},
	}
	for _, c := range categories {
		var existing models.Category
		err := db.Where("category_name = ? AND event_id = ?", c.CategoryName, c.EventID).
			First(&existing).Error
		if err != nil {
			if err != gorm.ErrRecordNotFound {
				return err
			}
			if err := db.Create(&c).Error; err != nil {
				return err
			}
			existing = c
		}

		distances := []decimal.Decimal{
			decimal.NewFromFloat(5),
			decimal.NewFromFloat(21.1),
			decimal.NewFromFloat(42.195),
		}
		for _, km := range distances {
			var option models.ParticipationOption
			err := db.Where("event_id = ? AND category_id = ? AND km = ?",
				existingEvent.ID, existing.ID, km).First(&option).Error
			if err != nil {
				if err != gorm.ErrRecordNotFound {
					return err
				}
				option = models.ParticipationOption{
					EventID:    existingEvent.ID,
					CategoryID: existing.ID,
					Km:         km,
					StartTime:  "06:00",
					IsActive:   true,
					EnteredBy:  enteredBy,
					UpdatedBy:  enteredBy,
				}
				if err := db.Create(&option).Error; err != nil {
					return err
				}
			}
		}
	}

	return nil
}
