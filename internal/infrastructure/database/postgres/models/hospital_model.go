package models

import (
	"time"

	"github.com/google/uuid"
)

// HospitalModel represents the database model for Hospital
type HospitalModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name           string    `gorm:"type:varchar(255);not null"`
	Location       string    `gorm:"type:varchar(255);not null"`
	License        string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	Email          string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHashed string    `gorm:"column:password_hash;type:varchar(255);not null"`
	Verified       bool      `gorm:"default:false;not null"`
	ContactInfo    *string   `gorm:"type:varchar(255)"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}

func (HospitalModel) TableName() string {
	return "hospitals"
}
