// utils/validation.go
package utils

import (
	"regexp"
	"strings"
	"time"
)

var dateOnlyPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidateDateOnly checks that a string is a well-formed YYYY-MM-DD
// calendar date. Handlers call this before anything reaches the
// availability engine, so the engine can assume well-formed input.
func ValidateDateOnly(date string) bool {
	if !dateOnlyPattern.MatchString(date) {
		return false
	}
	_, err := time.ParseInLocation(DateOnlyLayout, date, time.UTC)
	return err == nil
}

// ValidatePhone checks if a phone number is in a valid international format
func ValidatePhone(phone string) bool {
	// Clean the phone number
	cleaned := strings.ReplaceAll(phone, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	cleaned = strings.ReplaceAll(cleaned, "(", "")
	cleaned = strings.ReplaceAll(cleaned, ")", "")

	// Allows + prefix followed by 7-15 digits
	regex := `^\+?[1-9]\d{1,14}$`
	match, _ := regexp.MatchString(regex, cleaned)
	return match
}
