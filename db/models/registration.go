package models

import (
	"time"
)

// Registration is one person's signup for one event occurrence.
// BibNumber stays null until the post-insert patch assigns it; the
// derivation needs the generated row identifier first.
type Registration struct {
	ID               uint    `gorm:"primaryKey" json:"registrationid"`
	BibNumber        *string `gorm:"column:bibno;index" json:"bibno"`
	Name             string  `gorm:"not null" json:"name"`
	Gender           Gender  `gorm:"type:varchar(10);not null" json:"gender"`
	DateOfBirth      string  `gorm:"column:dob;not null" json:"dob"`
	City             string  `gorm:"not null" json:"city"`
	Email            string  `gorm:"not null" json:"email"`
	ContactNo        string  `gorm:"column:contactno;not null" json:"contactno"`
	EmergencyNo      *string `gorm:"column:emergencyno" json:"emergencyno"`
	TshirtSize       *string `gorm:"column:tshirtsize" json:"tshirtsize"`
	BookingReference *string `gorm:"column:bookingreference" json:"bookingreference"`
	ParticipateIn    string  `gorm:"column:participatein;not null" json:"participatein"`
	EventID          uint    `gorm:"column:event_id;not null;index" json:"event_id"`
	CategoryID       *uint   `gorm:"column:category_id" json:"category_id"`

	IsActive  bool      `gorm:"column:isactive;default:true" json:"isactive"`
	EnteredBy string    `gorm:"column:entryby" json:"entryby"`
	EnteredAt time.Time `gorm:"column:entrydate;autoCreateTime" json:"entrydate"`
	UpdatedBy string    `gorm:"column:updateby" json:"updateby"`
	UpdatedAt time.Time `gorm:"column:updatedate;autoUpdateTime" json:"updatedate"`
}

func (Registration) TableName() string {
	return "registration"
}
