package auth

import (
	hospitalUC "github.com/Joshua4-0p/blood-donation-app/internal/usecase/hospital"
	userUC "github.com/Joshua4-0p/blood-donation-app/internal/usecase/user"
)

type RegisterUserRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=255"`
	Email       string  `json:"email" validate:"required,email"`
	Password    string  `json:"password" validate:"required,min=8"`
	Age         *int    `json:"age" validate:"omitempty,min=0,max=130"`
	Gender      *string `json:"gender" validate:"omitempty,max=50"`
	Location    *string `json:"location" validate:"omitempty,max=255"`
	BloodType   string  `json:"blood_type" validate:"omitempty"`
	ContactInfo *string `json:"contact_info" validate:"omitempty,max=255"`
}

type RegisterHospitalRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=255"`
	Location    string  `json:"location" validate:"required,max=255"`
	License     string  `json:"license" validate:"required,min=3,max=100"`
	Email       string  `json:"email" validate:"required,email"`
	Password    string  `json:"password" validate:"required,min=8"`
	ContactInfo *string `json:"contact_info" validate:"omitempty,max=255"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ForgotPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	AccountType string `json:"account_type" validate:"omitempty,oneof=user hospital"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

// AuthResponse carries the issued token plus the profile matching the role.
type AuthResponse struct {
	AccessToken string                       `json:"access_token"`
	TokenType   string                       `json:"token_type"`
	ExpiresAt   int64                        `json:"expires_at"`
	Role        string                       `json:"role"`
	User        *userUC.UserResponse         `json:"user,omitempty"`
	Hospital    *hospitalUC.HospitalResponse `json:"hospital,omitempty"`
}
