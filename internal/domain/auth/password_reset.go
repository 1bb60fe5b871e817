package auth

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrResetOwnerInvalid = errors.New("password reset must belong to exactly one of user or hospital")

// PasswordReset is a single-use token bound to exactly one of user/hospital.
type PasswordReset struct {
	ID         uuid.UUID
	UserID     *uuid.UUID
	HospitalID *uuid.UUID
	Token      string
	ExpiresAt  time.Time
	CreatedAt  time.Time
}

// Validate enforces the exactly-one-owner invariant.
func (r *PasswordReset) Validate() error {
	if (r.UserID == nil) == (r.HospitalID == nil) {
		return ErrResetOwnerInvalid
	}
	return nil
}

func (r *PasswordReset) Expired(now time.Time) bool {
	return now.After(r.ExpiresAt)
}
