package request

import (
	"time"

	"github.com/google/uuid"

	domainRequest "github.com/Joshua4-0p/blood-donation-app/internal/domain/request"
)

type CreateRequest struct {
	BloodType     string  `json:"blood_type" validate:"required"`
	Quantity      int     `json:"quantity" validate:"omitempty,min=1"`
	Urgency       string  `json:"urgency" validate:"omitempty"`
	Location      string  `json:"location" validate:"required,max=255"`
	MedicalReason *string `json:"medical_reason" validate:"omitempty,max=2000"`
}

// UpdateRequest applies only the fields present in the payload.
type UpdateRequest struct {
	BloodType     *string `json:"blood_type" validate:"omitempty"`
	Quantity      *int    `json:"quantity" validate:"omitempty,min=1"`
	Urgency       *string `json:"urgency" validate:"omitempty"`
	Location      *string `json:"location" validate:"omitempty,max=255"`
	MedicalReason *string `json:"medical_reason" validate:"omitempty,max=2000"`
}

type ListFilter struct {
	Skip  int `form:"skip" validate:"omitempty,min=0"`
	Limit int `form:"limit" validate:"omitempty,min=1,max=100"`
}

type RequestResponse struct {
	ID            uuid.UUID  `json:"id"`
	UserID        *uuid.UUID `json:"user_id,omitempty"`
	HospitalID    *uuid.UUID `json:"hospital_id,omitempty"`
	BloodType     string     `json:"blood_type"`
	Quantity      int        `json:"quantity"`
	Urgency       string     `json:"urgency"`
	Location      string     `json:"location"`
	MedicalReason *string    `json:"medical_reason"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func ToRequestResponse(r *domainRequest.Request) *RequestResponse {
	if r == nil {
		return nil
	}
	return &RequestResponse{
		ID:            r.ID,
		UserID:        r.UserID,
		HospitalID:    r.HospitalID,
		BloodType:     r.BloodType.String(),
		Quantity:      r.Quantity,
		Urgency:       r.Urgency.String(),
		Location:      r.Location,
		MedicalReason: r.MedicalReason,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func ToRequestResponses(requests []*domainRequest.Request) []*RequestResponse {
	responses := make([]*RequestResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, ToRequestResponse(r))
	}
	return responses
}
