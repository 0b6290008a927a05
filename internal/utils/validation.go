package utils

import (
	"regexp"
	"strings"

	"github.com/contaplena/site-api/internal/models"
	"github.com/nyaruka/phonenumbers"
)

// ValidationError represents a validation error with field and message
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult represents the result of validation
type ValidationResult struct {
	IsValid bool              `json:"is_valid"`
	Errors  []ValidationError `json:"errors,omitempty"`
}

// NewValidationResult creates a new validation result
func NewValidationResult() *ValidationResult {
	return &ValidationResult{
		IsValid: true,
		Errors:  []ValidationError{},
	}
}

// AddError adds a validation error to the result
func (vr *ValidationResult) AddError(field, message string) {
	vr.IsValid = false
	vr.Errors = append(vr.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

var nonDigitRegex = regexp.MustCompile(`\D`)

// StripPhoneFormatting removes everything except digits from a phone number
func StripPhoneFormatting(phone string) string {
	return nonDigitRegex.ReplaceAllString(phone, "")
}

// NormalizePhone formats a Brazilian phone number to E.164 when it parses,
// returning the stripped digits otherwise. Validation does not depend on
// this succeeding.
func NormalizePhone(phone string) string {
	digits := StripPhoneFormatting(phone)
	num, err := phonenumbers.Parse(digits, "BR")
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return digits
	}
	return phonenumbers.Format(num, phonenumbers.E164)
}

// ValidateContactSubmission validates contact form input data
func ValidateContactSubmission(input models.ContactSubmissionInput) *ValidationResult {
	result := NewValidationResult()

	name := strings.TrimSpace(input.Name)
	if name == "" {
		result.AddError("name", "name is required")
	} else if len([]rune(name)) < 2 {
		result.AddError("name", "name must be at least 2 characters long")
	}

	email := strings.TrimSpace(input.Email)
	if email == "" {
		result.AddError("email", "email is required")
	} else if !emailRegex.MatchString(email) {
		result.AddError("email", "email is not valid")
	}

	phone := strings.TrimSpace(input.Phone)
	if phone == "" {
		result.AddError("phone", "phone is required")
	} else if len(StripPhoneFormatting(phone)) < 10 {
		result.AddError("phone", "phone must have at least 10 digits")
	}

	return result
}

// ValidateCNAEInput validates catalog record input data
func ValidateCNAEInput(input models.CNAEInput) *ValidationResult {
	result := NewValidationResult()

	if strings.TrimSpace(input.Code) == "" {
		result.AddError("code", "code is required")
	}
	if strings.TrimSpace(input.Description) == "" {
		result.AddError("description", "description is required")
	}

	return result
}
