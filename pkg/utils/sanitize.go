package utils

import (
	"html"
	"regexp"
	"strings"
	"unicode"
)

// SanitizeString trims whitespace and escapes HTML entities.
func SanitizeString(input string) string {
	return html.EscapeString(strings.TrimSpace(input))
}

// SanitizeEmail lowercases, trims and strips markup from email input.
func SanitizeEmail(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))
	email = stripHTML(email)
	email = removeControlChars(email)
	return email
}

// SanitizeText sanitizes multi-line text input, keeping newlines and tabs.
func SanitizeText(input string) string {
	escaped := html.EscapeString(strings.TrimSpace(input))

	var result strings.Builder
	for _, r := range escaped {
		if unicode.IsPrint(r) || r == '\n' || r == '\t' || r == '\r' {
			result.WriteRune(r)
		}
	}

	return result.String()
}

func stripHTML(input string) string {
	re := regexp.MustCompile(`<[^>]*>`)
	return re.ReplaceAllString(input, "")
}

func removeControlChars(input string) string {
	var result strings.Builder
	for _, r := range input {
		if unicode.IsPrint(r) || unicode.IsSpace(r) {
			result.WriteRune(r)
		}
	}
	return result.String()
}
