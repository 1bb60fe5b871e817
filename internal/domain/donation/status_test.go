package donation_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Joshua4-0p/blood-donation-app/internal/domain/donation"
)

func TestParseStatus(t *testing.T) {
	for _, value := range []string{"available", "in_progress", "completed", "deferred"} {
		parsed, err := donation.ParseStatus(value)
		require.NoError(t, err)
		require.Equal(t, value, parsed.String())
	}

	_, err := donation.ParseStatus("AVAILABLE")
	require.Error(t, err)
	_, err = donation.ParseStatus("cancelled")
	require.Error(t, err)
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from    donation.Status
		to      donation.Status
		allowed bool
	}{
		{donation.StatusAvailable, donation.StatusInProgress, true},
		{donation.StatusAvailable, donation.StatusCompleted, true},
		{donation.StatusAvailable, donation.StatusDeferred, false},
		{donation.StatusInProgress, donation.StatusCompleted, true},
		{donation.StatusInProgress, donation.StatusAvailable, false},
		{donation.StatusCompleted, donation.StatusAvailable, false},
		{donation.StatusCompleted, donation.StatusInProgress, false},
		{donation.StatusDeferred, donation.StatusAvailable, false},
		{donation.StatusDeferred, donation.StatusCompleted, false},
	}

	for _, tc := range cases {
		require.Equal(t, tc.allowed, donation.CanTransition(tc.from, tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestCanTransitionSameStateIsNoOp(t *testing.T) {
	for _, status := range []donation.Status{
		donation.StatusAvailable,
		donation.StatusInProgress,
		donation.StatusCompleted,
		donation.StatusDeferred,
	} {
		require.True(t, donation.CanTransition(status, status))
	}
}
