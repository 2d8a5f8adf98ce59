// utils/validation.go
package utils

import (
	"regexp"
	"strings"

	"carlach-backend/config"
)

var nonDigits = regexp.MustCompile(`\D`)

// ValidatePhone checks if a phone number is in a valid international format
func ValidatePhone(phone string) bool {
	// Clean the phone number
	cleaned := strings.ReplaceAll(phone, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	cleaned = strings.ReplaceAll(cleaned, "(", "")
	cleaned = strings.ReplaceAll(cleaned, ")", "")

	// Regular expression for international phone numbers
	// Allows + prefix followed by 7-15 digits
	regex := `^\+?[1-9]\d{1,14}$`
	match, _ := regexp.MatchString(regex, cleaned)
	return match
}

// NormalizePhone strips every non-digit character and prepends the default
// country code when the number does not already carry it.
func NormalizePhone(phone string) string {
	cleaned := nonDigits.ReplaceAllString(phone, "")
	if cleaned == "" {
		return cleaned
	}
	cc := config.AppConfig.DefaultCountryCode
	if cc == "" {
		cc = "55"
	}
	if strings.HasPrefix(cleaned, cc) {
		return cleaned
	}
	return cc + cleaned
}
