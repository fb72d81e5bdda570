package models

import (
	"time"
)

// User is a site account. Controllers only consume the identity triple
// (id, full name, admin flag); credential handling lives outside this
// service.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FullName  string    `gorm:"column:fullname;not null" json:"fullname"`
	Username  string    `gorm:"unique;not null" json:"username"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Password  string    `json:"-"` // Never include in JSON responses
	ContactNo string    `gorm:"column:contact_no" json:"contact_no"`
	IsAdmin   bool      `gorm:"column:is_admin;default:false" json:"isAdmin"`
	Active    bool      `gorm:"default:true" json:"active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "usermaster"
}
