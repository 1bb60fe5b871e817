package donation

import (
	"time"

	"github.com/google/uuid"

	domainDonation "github.com/Joshua4-0p/blood-donation-app/internal/domain/donation"
)

type CreateRequest struct {
	Location            *string                `json:"location" validate:"omitempty,max=255"`
	HealthQuestionnaire map[string]interface{} `json:"health_questionnaire" validate:"required"`
}

// UpdateRequest applies only the fields present in the payload. The recipient
// is derived from the linked request and is deliberately not accepted here.
type UpdateRequest struct {
	Status    *string    `json:"status" validate:"omitempty"`
	RequestID *uuid.UUID `json:"request_id" validate:"omitempty"`
	Location  *string    `json:"location" validate:"omitempty,max=255"`
}

type SearchFilter struct {
	BloodType *string `form:"blood_type"`
	Location  *string `form:"location"`
	Skip      int     `form:"skip" validate:"omitempty,min=0"`
	Limit     int     `form:"limit" validate:"omitempty,min=1,max=100"`
}

type DonationResponse struct {
	ID                  uuid.UUID              `json:"id"`
	UserID              uuid.UUID              `json:"user_id"`
	HospitalID          *uuid.UUID             `json:"hospital_id,omitempty"`
	RequestID           *uuid.UUID             `json:"request_id,omitempty"`
	RecipientUserID     *uuid.UUID             `json:"recipient_user_id,omitempty"`
	Status              string                 `json:"status"`
	HealthQuestionnaire map[string]interface{} `json:"health_questionnaire"`
	EligibilityReason   *string                `json:"eligibility_reason"`
	Location            *string                `json:"location"`
	DonorBloodType      *string                `json:"donor_blood_type,omitempty"`
	CompletedAt         *time.Time             `json:"completed_at"`
	CreatedAt           time.Time              `json:"created_at"`
	UpdatedAt           time.Time              `json:"updated_at"`
}

func ToDonationResponse(d *domainDonation.Donation) *DonationResponse {
	if d == nil {
		return nil
	}

	resp := &DonationResponse{
		ID:                  d.ID,
		UserID:              d.UserID,
		HospitalID:          d.HospitalID,
		RequestID:           d.RequestID,
		RecipientUserID:     d.RecipientUserID,
		Status:              d.Status.String(),
		HealthQuestionnaire: d.HealthQuestionnaire,
		EligibilityReason:   d.EligibilityReason,
		Location:            d.Location,
		CompletedAt:         d.CompletedAt,
		CreatedAt:           d.CreatedAt,
		UpdatedAt:           d.UpdatedAt,
	}

	if d.DonorBloodType != nil {
		bt := d.DonorBloodType.String()
		resp.DonorBloodType = &bt
	}

	return resp
}

func ToDonationResponses(donations []*domainDonation.Donation) []*DonationResponse {
	responses := make([]*DonationResponse, 0, len(donations))
	for _, d := range donations {
		responses = append(responses, ToDonationResponse(d))
	}
	return responses
}
