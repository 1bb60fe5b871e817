package models

import (
	"time"

	"github.com/google/uuid"
)

// RequestModel represents the database model for blood Requests
type RequestModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID        *uuid.UUID `gorm:"type:uuid;index"`
	HospitalID    *uuid.UUID `gorm:"type:uuid;index"`
	BloodType     string     `gorm:"type:varchar(10);not null"`
	Quantity      int        `gorm:"type:integer;not null;default:1;check:quantity >= 1"`
	Urgency       string     `gorm:"type:varchar(10);not null;default:'medium'"`
	Location      string     `gorm:"type:varchar(255);not null"`
	MedicalReason *string    `gorm:"type:text"`
	CreatedAt     time.Time  `gorm:"not null"`
	UpdatedAt     time.Time  `gorm:"not null"`

	User     *UserModel     `gorm:"foreignKey:UserID"`
	Hospital *HospitalModel `gorm:"foreignKey:HospitalID"`
}

func (RequestModel) TableName() string {
	return "requests"
}
