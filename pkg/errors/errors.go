package errors

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrUnauthorized       = errors.New("unauthorized access")
	ErrForbidden          = errors.New("insufficient permissions")

	ErrEmailAlreadyUsed   = errors.New("email is already registered")
	ErrLicenseAlreadyUsed = errors.New("hospital license is already registered")

	ErrWeakPassword = errors.New("password does not meet requirements")

	ErrResetTokenNotFound = errors.New("password reset token not found")
	ErrResetTokenExpired  = errors.New("password reset token has expired")

	// ErrEligibilityService means the external eligibility service could not be
	// reached at all. The enclosing donation creation must abort.
	ErrEligibilityService = errors.New("eligibility service unavailable")
)

type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
