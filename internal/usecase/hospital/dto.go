package hospital

import (
	"time"

	"github.com/google/uuid"

	domainHospital "github.com/Joshua4-0p/blood-donation-app/internal/domain/hospital"
)

// UpdateProfileRequest applies only the fields present in the payload.
// License and email are immutable after registration.
type UpdateProfileRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=255"`
	Location    *string `json:"location" validate:"omitempty,max=255"`
	ContactInfo *string `json:"contact_info" validate:"omitempty,max=255"`
}

type HospitalResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	License     string    `json:"license"`
	Email       string    `json:"email"`
	Verified    bool      `json:"verified"`
	ContactInfo *string   `json:"contact_info"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ToHospitalResponse(h *domainHospital.Hospital) *HospitalResponse {
	if h == nil {
		return nil
	}
	return &HospitalResponse{
		ID:          h.ID,
		Name:        h.Name,
		Location:    h.Location,
		License:     h.License,
		Email:       h.Email,
		Verified:    h.Verified,
		ContactInfo: h.ContactInfo,
		CreatedAt:   h.CreatedAt,
		UpdatedAt:   h.UpdatedAt,
	}
}
