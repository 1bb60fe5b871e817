package auth_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/Joshua4-0p/blood-donation-app/internal/domain/auth"
)

func TestPasswordResetValidate(t *testing.T) {
	userID := uuid.New()
	hospitalID := uuid.New()

	reset := auth.PasswordReset{UserID: &userID}
	require.NoError(t, reset.Validate())

	reset = auth.PasswordReset{HospitalID: &hospitalID}
	require.NoError(t, reset.Validate())

	reset = auth.PasswordReset{}
	require.ErrorIs(t, reset.Validate(), auth.ErrResetOwnerInvalid)

	reset = auth.PasswordReset{UserID: &userID, HospitalID: &hospitalID}
	require.ErrorIs(t, reset.Validate(), auth.ErrResetOwnerInvalid)
}

func TestPasswordResetExpired(t *testing.T) {
	now := time.Now()

	reset := auth.PasswordReset{ExpiresAt: now.Add(time.Hour)}
	require.False(t, reset.Expired(now))

	reset = auth.PasswordReset{ExpiresAt: now.Add(-time.Minute)}
	require.True(t, reset.Expired(now))
}
