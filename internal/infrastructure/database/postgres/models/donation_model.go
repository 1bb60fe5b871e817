package models

import (
	"time"

	"github.com/google/uuid"
)

// DonationModel represents the database model for Donations
type DonationModel struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID              uuid.UUID  `gorm:"type:uuid;not null;index"`
	HospitalID          *uuid.UUID `gorm:"type:uuid;index"`
	RequestID           *uuid.UUID `gorm:"type:uuid;index"`
	RecipientUserID     *uuid.UUID `gorm:"type:uuid;index"`
	Status              string     `gorm:"type:varchar(20);not null;default:'available';index"`
	HealthQuestionnaire []byte     `gorm:"type:jsonb"`
	EligibilityReason   *string    `gorm:"type:text"`
	Location            *string    `gorm:"type:varchar(255)"`
	CompletedAt         *time.Time `gorm:"type:timestamptz"`
	CreatedAt           time.Time  `gorm:"not null;index"`
	UpdatedAt           time.Time  `gorm:"not null"`

	User          *UserModel     `gorm:"foreignKey:UserID"`
	Hospital      *HospitalModel `gorm:"foreignKey:HospitalID"`
	Request       *RequestModel  `gorm:"foreignKey:RequestID"`
	RecipientUser *UserModel     `gorm:"foreignKey:RecipientUserID"`
}

func (DonationModel) TableName() string {
	return "donations"
}
