package utils_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	appErrors "github.com/Joshua4-0p/blood-donation-app/pkg/errors"
	"github.com/Joshua4-0p/blood-donation-app/pkg/utils"
)

func TestGenerateAndValidateToken(t *testing.T) {
	token, expiresAt, err := utils.GenerateToken("alice@example.com", "user", "secret", 60)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Greater(t, expiresAt, time.Now().Unix())

	claims, err := utils.ValidateToken(token, "secret")
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", claims.Email)
	require.Equal(t, "user", claims.Role)
	require.Equal(t, "alice@example.com", claims.Subject)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, _, err := utils.GenerateToken("alice@example.com", "user", "secret", 60)
	require.NoError(t, err)

	_, err = utils.ValidateToken(token, "other-secret")
	require.ErrorIs(t, err, appErrors.ErrInvalidToken)
}

func TestValidateTokenGarbage(t *testing.T) {
	_, err := utils.ValidateToken("not.a.token", "secret")
	require.ErrorIs(t, err, appErrors.ErrInvalidToken)
}

func TestGenerateTokenDefaultExpiry(t *testing.T) {
	_, expiresAt, err := utils.GenerateToken("h@example.com", "hospital", "secret", 0)
	require.NoError(t, err)

	expected := time.Now().Add(utils.DefaultTokenExpiryMinutes * time.Minute).Unix()
	require.InDelta(t, expected, expiresAt, 5)
}
