package hospital

import (
	"time"

	"github.com/google/uuid"
)

// Hospital represents a registered hospital in the domain. Verified is false
// until an administrative verification action flips it.
type Hospital struct {
	ID             uuid.UUID
	Name           string
	Location       string
	License        string
	Email          string
	PasswordHashed string
	Verified       bool
	ContactInfo    *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
