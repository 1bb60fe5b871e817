package utils_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Joshua4-0p/blood-donation-app/pkg/utils"
)

func TestSanitizeString(t *testing.T) {
	require.Equal(t, "Alice", utils.SanitizeString("  Alice  "))
	require.Equal(t, "&lt;b&gt;Alice&lt;/b&gt;", utils.SanitizeString("<b>Alice</b>"))
}

func TestSanitizeEmail(t *testing.T) {
	require.Equal(t, "alice@example.com", utils.SanitizeEmail("  ALICE@Example.COM "))
	require.Equal(t, "alice@example.com", utils.SanitizeEmail("<script>alice@example.com</script>"))
}

func TestSanitizeTextKeepsNewlines(t *testing.T) {
	out := utils.SanitizeText("line one\nline two")
	require.Equal(t, "line one\nline two", out)
}
