package models

import (
	"time"

	"github.com/google/uuid"
)

// UserModel represents the database model for User
type UserModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name           string    `gorm:"type:varchar(255);not null"`
	Email          string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHashed string    `gorm:"column:password_hash;type:varchar(255);not null"`
	Age            *int      `gorm:"type:integer"`
	Gender         *string   `gorm:"type:varchar(50)"`
	Location       *string   `gorm:"type:varchar(255)"`
	BloodType      *string   `gorm:"type:varchar(10);index"`
	ContactInfo    *string   `gorm:"type:varchar(255)"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}

func (UserModel) TableName() string {
	return "users"
}
