package blood_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Joshua4-0p/blood-donation-app/internal/domain/blood"
)

func TestParseType(t *testing.T) {
	for _, value := range []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-", "Unknown"} {
		parsed, err := blood.ParseType(value)
		require.NoError(t, err)
		require.Equal(t, value, parsed.String())
		require.True(t, parsed.Valid())
	}
}

func TestParseTypeRejectsUnknownValues(t *testing.T) {
	for _, value := range []string{"", "C+", "a+", "AB", "O", "unknown"} {
		_, err := blood.ParseType(value)
		require.Error(t, err, "value %q", value)
	}
}
