package usecase

import (
	"net/mail"
	"regexp"
	"strings"
	"time"

	"github.com/varunbhx/coachdesk/internal/entity"
)

func ValidateCreateClientInput(input CreateClientInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Name) == "" {
		errors = append(errors, ValidationError{"name", "is required"})
	} else if len(input.Name) > 200 {
		errors = append(errors, ValidationError{"name", "must not exceed 200 characters"})
	}

	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "is required"})
	} else if _, err := mail.ParseAddress(input.Email); err != nil {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}

	if strings.TrimSpace(input.Phone) == "" {
		errors = append(errors, ValidationError{"phone", "is required"})
	} else if !isValidPhoneNumber(input.Phone) {
		errors = append(errors, ValidationError{"phone", "must be a valid phone number"})
	}

	if input.Age != 0 && (input.Age < 1 || input.Age > 120) {
		errors = append(errors, ValidationError{"age", "must be between 1 and 120"})
	}

	if input.Gender != "" && !isValidGender(input.Gender) {
		errors = append(errors, ValidationError{"gender", "must be male, female or other"})
	}

	if !entity.ValidProgram(input.Program) {
		errors = append(errors, ValidationError{"program", "is not a known program"})
	}

	if input.StartDate != "" && !isValidDate(input.StartDate) {
		errors = append(errors, ValidationError{"start_date", "must be a valid date (YYYY-MM-DD)"})
	}

	return errors
}

func ValidateCreateLeadInput(input CreateLeadInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Name) == "" {
		errors = append(errors, ValidationError{"name", "is required"})
	}

	if input.Email != "" {
		if _, err := mail.ParseAddress(input.Email); err != nil {
			errors = append(errors, ValidationError{"email", "is invalid"})
		}
	}

	if !entity.ValidLeadSource(input.Source) {
		errors = append(errors, ValidationError{"source", "is not a known lead source"})
	}

	if !entity.ValidProgram(input.Program) {
		errors = append(errors, ValidationError{"program", "is not a known program"})
	}

	if input.Value.IsNegative() {
		errors = append(errors, ValidationError{"value", "must not be negative"})
	}

	return errors
}

func ValidateCreatePaymentInput(input CreatePaymentInput) []ValidationError {
	var errors []ValidationError

	if input.ClientID <= 0 {
		errors = append(errors, ValidationError{"client_id", "is required"})
	}

	if input.Amount.IsNegative() {
		errors = append(errors, ValidationError{"amount", "must not be negative"})
	}

	if !entity.ValidPaymentMethod(input.Method) {
		errors = append(errors, ValidationError{"method", "is not a known payment method"})
	}

	if strings.TrimSpace(input.Date) == "" {
		errors = append(errors, ValidationError{"date", "is required"})
	} else if !isValidDate(input.Date) {
		errors = append(errors, ValidationError{"date", "must be a valid date (YYYY-MM-DD)"})
	}

	if !entity.ValidPaymentStatus(input.Status) {
		errors = append(errors, ValidationError{"status", "must be completed, pending or failed"})
	}

	return errors
}

func ValidateCreateSessionInput(input CreateSessionInput) []ValidationError {
	var errors []ValidationError

	if input.ClientID <= 0 {
		errors = append(errors, ValidationError{"client_id", "is required"})
	}

	if !entity.ValidSessionType(input.Type) {
		errors = append(errors, ValidationError{"type", "is not a known session type"})
	}

	if strings.TrimSpace(input.Date) == "" {
		errors = append(errors, ValidationError{"date", "is required"})
	} else if !isValidDate(input.Date) {
		errors = append(errors, ValidationError{"date", "must be a valid date (YYYY-MM-DD)"})
	}

	if strings.TrimSpace(input.Time) == "" {
		errors = append(errors, ValidationError{"time", "is required"})
	} else if !isValidClockTime(input.Time) {
		errors = append(errors, ValidationError{"time", "must be a valid time (HH:MM)"})
	}

	if input.Duration <= 0 {
		errors = append(errors, ValidationError{"duration_minutes", "must be a positive number of minutes"})
	}

	return errors
}

func isValidPhoneNumber(phone string) bool {
	cleaned := regexp.MustCompile(`\D`).ReplaceAllString(phone, "")
	return len(cleaned) >= 10 && len(cleaned) <= 13
}

func isValidDate(dateStr string) bool {
	if _, err := time.Parse("2006-01-02", dateStr); err == nil {
		return true
	}
	if _, err := time.Parse(time.RFC3339, dateStr); err == nil {
		return true
	}
	return false
}

func isValidClockTime(t string) bool {
	_, err := time.Parse("15:04", t)
	return err == nil
}

func isValidGender(gender string) bool {
	g := strings.ToLower(strings.TrimSpace(gender))
	return g == "male" || g == "female" || g == "other"
}
