package models

import (
	"time"
)

type Gender string

const (
	MaleGender   Gender = "Male"
	FemaleGender Gender = "Female"
	OthersGender Gender = "Others"
)

// ValidGender reports whether g is one of the three accepted values.
// The comparison is case-sensitive: "M" and "male" are rejected.
func ValidGender(g Gender) bool {
	switch g {
	case MaleGender, FemaleGender, OthersGender:
		return true
	default:
		return false
	}
}

// Result is one finisher's timing record. Bib uniqueness is enforced only
// by the pre-insert check in the import and add paths, not by a database
// constraint; time-of-day fields are stored as "HH:MM:SS" strings or null,
// matching what the timing contractor exports.
type Result struct {
	ID             uint    `gorm:"primaryKey" json:"resultId"`
	RegistrationID *uint   `json:"registrationId"`
	BibNumber      string  `gorm:"column:bibno;not null;index" json:"bibno"`
	Name           string  `gorm:"not null" json:"name"`
	StartTime      *string `gorm:"column:startime" json:"startime"`
	FinishTime     *string `gorm:"column:finishtime" json:"finishtime"`
	RaceTime       *string `json:"raceTime"`

	// Checkpoint marker ids and their crossing times (CP1..CP5)
	CP1     *string `gorm:"column:cp1" json:"cP1"`
	CP1Time *string `gorm:"column:cp1_time" json:"cP1Time"`
	CP2     *string `gorm:"column:cp2" json:"cP2"`
	CP2Time *string `gorm:"column:cp2_time" json:"cP2Time"`
	CP3     *string `gorm:"column:cp3" json:"cP3"`
	CP3Time *string `gorm:"column:cp3_time" json:"cP3Time"`
	CP4     *string `gorm:"column:cp4" json:"cP4"`
	CP4Time *string `gorm:"column:cp4_time" json:"cP4Time"`
	CP5     *string `gorm:"column:cp5" json:"cP5"`
	CP5Time *string `gorm:"column:cp5_time" json:"cP5Time"`

	Age           *int    `json:"age"`
	Gender        Gender  `gorm:"type:varchar(10);not null" json:"gender"`
	ParticipateIn *string `gorm:"column:participatein" json:"participatein"`
	CategoryID    *uint   `json:"categoryId"`
	City          *string `json:"city"`
	RFID1         *string `gorm:"column:rfid1" json:"rfid1"`
	RFID2         *string `gorm:"column:rfid2" json:"rfid2"`
	EventID       uint    `gorm:"not null;index" json:"eventId"`
	CStartTime    *string `gorm:"column:c_start_time" json:"CStartTime"`
	CRaceTime     *string `gorm:"column:c_race_time" json:"CRaceTime"`
	ImageID       *string `gorm:"column:imageid" json:"imageid"`

	IsActive  bool      `gorm:"column:isactive;default:true" json:"isactive"`
	EnteredBy uint      `gorm:"column:entryby" json:"entryby"`
	EnteredAt time.Time `gorm:"column:entrydate;autoCreateTime" json:"entrydate"`
}

func (Result) TableName() string {
	return "resultmaster"
}
