package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Event is a race occurrence (e.g. "City Marathon 2026").
type Event struct {
	ID               uint     `gorm:"column:event_id;primaryKey" json:"event_id"`
	EventName        string   `gorm:"column:event_name;not null;index" json:"event_name"`
	EventDate        DateOnly `gorm:"column:event_date;type:date;not null" json:"event_date"`
	EventYear        int      `gorm:"column:event_year;not null" json:"event_year"`
	EventType        string   `gorm:"column:event_type;not null" json:"event_type"`
	EventDescription string   `gorm:"column:event_description;type:text" json:"event_description"`
	EventImage       *string  `gorm:"column:event_image" json:"event_image"`
	Location         string   `gorm:"not null" json:"location"`
	Time             string   `gorm:"not null" json:"time"` // "HH:mm" start-of-day time

	IsActive  bool      `gorm:"column:is_active;default:true" json:"is_active"`
	EnteredBy string    `gorm:"column:entry_by" json:"entry_by"`
	EnteredAt time.Time `gorm:"column:entry_date;autoCreateTime" json:"entry_date"`
	UpdatedBy string    `gorm:"column:update_by" json:"update_by"`
	UpdatedAt time.Time `gorm:"column:updated_date;autoUpdateTime" json:"updated_date"`
}

func (Event) TableName() string {
	return "event_master"
}

// Category is an age-banded grouping within an event.
type Category struct {
	ID                  uint      `gorm:"column:category_id;primaryKey" json:"category_id"`
	CategoryName        string    `gorm:"column:category_name;not null" json:"category_name"`
	CategoryDescription string    `gorm:"column:category_description" json:"category_description"`
	FromAge             int       `gorm:"column:from_age" json:"from_age"`
	ToAge               int       `gorm:"column:to_age" json:"to_age"`
	EventID             uint      `gorm:"column:event_id;not null;index" json:"event_id"`
	IsActive            bool      `gorm:"column:is_active;default:true" json:"is_active"`
	EnteredBy           string    `gorm:"column:entry_by" json:"entry_by"`
	EnteredAt           time.Time `gorm:"column:entry_date;autoCreateTime" json:"entry_date"`
}

func (Category) TableName() string {
	return "category_master"
}

// ParticipationOption is a selectable race distance for an event+category
// pair. The (event, category, km) triple is kept unique by the application
// layer; there is deliberately no database unique index, the duplicate
// check happens before insert.
type ParticipationOption struct {
	ID         uint            `gorm:"column:participateinid;primaryKey" json:"participateinid"`
	EventID    uint            `gorm:"column:event_id;not null;index" json:"event_id"`
	CategoryID uint            `gorm:"column:category_id;not null;index" json:"category_id"`
	Km         decimal.Decimal `gorm:"column:km;type:decimal(6,3);not null" json:"km"`
	StartTime  string          `gorm:"column:starttime" json:"starttime"`
	IsActive   bool            `gorm:"column:isactive;default:true" json:"isactive"`
	EnteredBy  string          `gorm:"column:entry_by" json:"entry_by"`
	EnteredAt  time.Time       `gorm:"column:entry_date;autoCreateTime" json:"entry_date"`
	UpdatedBy  string          `gorm:"column:update_by" json:"update_by"`
	UpdatedAt  time.Time       `gorm:"column:updated_date;autoUpdateTime" json:"updated_date"`
}

func (ParticipationOption) TableName() string {
	return "participateinmaster"
}
