package user

import (
	"time"

	"github.com/google/uuid"

	domainUser "github.com/Joshua4-0p/blood-donation-app/internal/domain/user"
)

// UpdateProfileRequest applies only the fields present in the payload.
type UpdateProfileRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=255"`
	Age         *int    `json:"age" validate:"omitempty,min=0,max=130"`
	Gender      *string `json:"gender" validate:"omitempty,max=50"`
	Location    *string `json:"location" validate:"omitempty,max=255"`
	BloodType   *string `json:"blood_type" validate:"omitempty"`
	ContactInfo *string `json:"contact_info" validate:"omitempty,max=255"`
}

type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Age         *int      `json:"age"`
	Gender      *string   `json:"gender"`
	Location    *string   `json:"location"`
	BloodType   string    `json:"blood_type"`
	ContactInfo *string   `json:"contact_info"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ToUserResponse(u *domainUser.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Age:         u.Age,
		Gender:      u.Gender,
		Location:    u.Location,
		BloodType:   u.BloodType.String(),
		ContactInfo: u.ContactInfo,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
