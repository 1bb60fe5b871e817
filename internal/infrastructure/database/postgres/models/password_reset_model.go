package models

import (
	"time"

	"github.com/google/uuid"
)

// PasswordResetModel represents the database model for password reset tokens.
// The check constraint enforces that a token belongs to exactly one of
// user/hospital.
type PasswordResetModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID     *uuid.UUID `gorm:"type:uuid;index"`
	HospitalID *uuid.UUID `gorm:"type:uuid;index"`
	Token      string     `gorm:"type:varchar(255);not null;uniqueIndex"`
	ExpiresAt  time.Time  `gorm:"not null;index"`
	CreatedAt  time.Time  `gorm:"not null"`

	User     *UserModel     `gorm:"foreignKey:UserID"`
	Hospital *HospitalModel `gorm:"foreignKey:HospitalID"`
}

func (PasswordResetModel) TableName() string {
	return "password_resets"
}
