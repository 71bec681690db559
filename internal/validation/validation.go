// Package validation checks user input before anything is persisted.
package validation

import (
	"fmt"
	"strings"

	"github.com/stefvanboven/mino-companion/internal/errs"
	"github.com/stefvanboven/mino-companion/internal/models"
)

const (
	phoneMinDigits = 9
	phoneMaxDigits = 10
)

// CleanPhone strips everything but digits and truncates to the maximum length.
func CleanPhone(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
		if b.Len() == phoneMaxDigits {
			break
		}
	}
	return b.String()
}

// ValidateContact checks the caregiver contact form. Phone numbers must hold
// at least nine digits.
func ValidateContact(c models.CaregiverContact) error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: contact name is required", errs.ErrValidation)
	}
	if len(CleanPhone(c.Phone)) < phoneMinDigits {
		return fmt.Errorf("%w: phone number must contain at least %d digits", errs.ErrValidation, phoneMinDigits)
	}
	return nil
}

// ValidateMedication checks a manually entered medication. Name and a
// non-negative stock are required; dosage is optional.
func ValidateMedication(m models.Medication) error {
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("%w: medication name is required", errs.ErrValidation)
	}
	if m.Stock < 0 {
		return fmt.Errorf("%w: stock cannot be negative", errs.ErrValidation)
	}
	return nil
}

// ValidateBaseURL checks a robot endpoint address.
func ValidateBaseURL(url string) error {
	trimmed := strings.TrimSpace(url)
	if !strings.HasPrefix(trimmed, "http://") && !strings.HasPrefix(trimmed, "https://") {
		return fmt.Errorf("%w: robot address must start with http:// or https://", errs.ErrValidation)
	}
	return nil
}
