package request

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Joshua4-0p/blood-donation-app/internal/domain/blood"
)

// Urgency represents how urgently a blood request must be fulfilled.
type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

var urgencies = map[string]Urgency{
	string(UrgencyLow):    UrgencyLow,
	string(UrgencyMedium): UrgencyMedium,
	string(UrgencyHigh):   UrgencyHigh,
}

func ParseUrgency(s string) (Urgency, error) {
	if u, ok := urgencies[s]; ok {
		return u, nil
	}
	return "", fmt.Errorf("invalid urgency %q", s)
}

func (u Urgency) String() string {
	return string(u)
}

// Request represents a blood request posted by a user or a hospital.
// Exactly one of UserID/HospitalID is set: the creator.
type Request struct {
	ID         uuid.UUID
	UserID     *uuid.UUID
	HospitalID *uuid.UUID

	BloodType     blood.Type
	Quantity      int
	Urgency       Urgency
	Location      string
	MedicalReason *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OwnedBy reports whether the request was created by the given principal ids.
func (r *Request) OwnedBy(userID, hospitalID *uuid.UUID) bool {
	if r.UserID != nil && userID != nil && *r.UserID == *userID {
		return true
	}
	if r.HospitalID != nil && hospitalID != nil && *r.HospitalID == *hospitalID {
		return true
	}
	return false
}
