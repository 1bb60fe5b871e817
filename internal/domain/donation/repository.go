package donation

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Joshua4-0p/blood-donation-app/internal/domain/blood"
)

// SearchFilter represents filtering options for the availability search.
type SearchFilter struct {
	// BloodType matches the donor's blood type exactly.
	BloodType *blood.Type
	// Location is a case-insensitive substring match on the donor's location.
	Location *string

	Skip  int
	Limit int
}

// Repository defines the interface for donation persistence operations
type Repository interface {
	Create(ctx context.Context, donation *Donation) error
	GetByID(ctx context.Context, donationID uuid.UUID) (*Donation, error)
	Update(ctx context.Context, donation *Donation) error

	// Search lists AVAILABLE donations ordered by donor blood type descending
	// (nulls last), then creation time descending.
	Search(ctx context.Context, filter *SearchFilter) ([]*Donation, error)

	// LastCompletedAt returns the completion time of the donor's most recent
	// COMPLETED donation, or nil when there is none.
	LastCompletedAt(ctx context.Context, userID uuid.UUID) (*time.Time, error)

	ListCompletedByDonor(ctx context.Context, userID uuid.UUID) ([]*Donation, error)
	ListByRecipient(ctx context.Context, userID uuid.UUID) ([]*Donation, error)
	ListByHospital(ctx context.Context, hospitalID uuid.UUID) ([]*Donation, error)
}
