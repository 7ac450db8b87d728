// utils/validation.go
package utils

import (
	"regexp"
)

var primaryPhoneRegex = regexp.MustCompile(`^03[0-9]{9}$`)

// ValidatePrimaryPhone checks the local mobile format: exactly
// 11 digits starting with 03 (e.g. 03XXXXXXXXX).
func ValidatePrimaryPhone(phone string) bool {
	return primaryPhoneRegex.MatchString(phone)
}
