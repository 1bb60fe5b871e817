package user

import (
	"time"

	"github.com/google/uuid"

	"github.com/Joshua4-0p/blood-donation-app/internal/domain/blood"
)

// User represents a registered donor/recipient in the domain.
type User struct {
	ID             uuid.UUID
	Name           string
	Email          string
	PasswordHashed string

	Age         *int
	Gender      *string
	Location    *string
	BloodType   blood.Type
	ContactInfo *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
