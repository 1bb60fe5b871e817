package donation

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Joshua4-0p/blood-donation-app/internal/domain/blood"
)

// Status represents the lifecycle state of a donation.
type Status string

const (
	// StatusAvailable is the initial state for an eligible donor.
	StatusAvailable Status = "available"
	// StatusInProgress marks a donation a hospital has started processing.
	StatusInProgress Status = "in_progress"
	// StatusCompleted is terminal; reaching it stamps completed_at.
	StatusCompleted Status = "completed"
	// StatusDeferred is the initial and terminal state for an ineligible donor.
	StatusDeferred Status = "deferred"
)

var statuses = map[string]Status{
	string(StatusAvailable):  StatusAvailable,
	string(StatusInProgress): StatusInProgress,
	string(StatusCompleted):  StatusCompleted,
	string(StatusDeferred):   StatusDeferred,
}

func ParseStatus(s string) (Status, error) {
	if st, ok := statuses[s]; ok {
		return st, nil
	}
	return "", fmt.Errorf("invalid donation status %q", s)
}

func (s Status) String() string {
	return string(s)
}

// transitions enumerates the legal status moves. DEFERRED and COMPLETED are
// terminal.
var transitions = map[Status][]Status{
	StatusAvailable:  {StatusInProgress, StatusCompleted},
	StatusInProgress: {StatusCompleted},
	StatusCompleted:  {},
	StatusDeferred:   {},
}

// CanTransition reports whether moving from -> to is legal.
// A no-op transition (from == to) is always allowed.
func CanTransition(from, to Status) bool {
	if from == to {
		return true
	}
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Donation represents a donation offer and its lifecycle. RecipientUserID is
// derived from the linked request's owning user; it is never caller-supplied.
type Donation struct {
	ID     uuid.UUID
	UserID uuid.UUID

	HospitalID      *uuid.UUID
	RequestID       *uuid.UUID
	RecipientUserID *uuid.UUID

	Status              Status
	HealthQuestionnaire map[string]interface{}
	EligibilityReason   *string
	Location            *string

	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// DonorBloodType is populated on reads that join the donor, for search
	// results and responses. It is not a column of the donations table.
	DonorBloodType *blood.Type
}
