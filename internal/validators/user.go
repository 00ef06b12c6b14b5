// Package validators performs field-level validation of inbound request
// payloads before they reach the service layer. Failures are reported as a
// [ValidationError] carrying one entry per offending field, which the HTTP
// boundary renders as a 422 response.
package validators

import (
	"regexp"
	"time"

	"github.com/mkorolev/salary-service/models"
)

const (
	minNameLength     = 2
	maxNameLength     = 50
	minPasswordLength = 8
	maxPasswordLength = 24
	minAgeYears       = 18
)

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phonePattern = regexp.MustCompile(`^\+\d{1,15}$`)
)

// ValidateRegister checks the registration payload: required email and
// password plus the shared optional-field rules.
func ValidateRegister(req models.RegisterRequest) error {
	var v ValidationError

	if req.Email == "" {
		v.add("email", "email is required")
	} else if !emailPattern.MatchString(req.Email) {
		v.add("email", "invalid email address")
	}

	validatePassword(&v, req.Password)
	validateOptionalFields(&v, req.PhoneNumber, req.FirstName, req.LastName, req.DateOfBirth)

	return v.orNil()
}

// ValidateLogin checks the login payload: email format and password length.
func ValidateLogin(req models.LoginRequest) error {
	var v ValidationError

	if req.Email == "" || !emailPattern.MatchString(req.Email) {
		v.add("email", "invalid email address")
	}
	validatePassword(&v, req.Password)

	return v.orNil()
}

// ValidateUpdate checks the partial-update payload. All fields are optional;
// present fields must satisfy the same rules as at registration.
func ValidateUpdate(req models.UpdateUserRequest) error {
	var v ValidationError

	if req.Email != nil && !emailPattern.MatchString(*req.Email) {
		v.add("email", "invalid email address")
	}
	validateOptionalFields(&v, req.PhoneNumber, req.FirstName, req.LastName, req.DateOfBirth)

	return v.orNil()
}

func validatePassword(v *ValidationError, password string) {
	if len(password) < minPasswordLength || len(password) > maxPasswordLength {
		v.add("password", "password must be between 8 and 24 characters")
	}
}

func validateOptionalFields(v *ValidationError, phoneNumber, firstName, lastName *string, dateOfBirth *models.Date) {
	if phoneNumber != nil && !phonePattern.MatchString(*phoneNumber) {
		v.add("phone_number", "phone number must start with '+' followed by 1 to 15 digits")
	}

	if firstName != nil && !nameLengthOK(*firstName) {
		v.add("first_name", "first name must be between 2 and 50 characters")
	}

	if lastName != nil && !nameLengthOK(*lastName) {
		v.add("last_name", "last name must be between 2 and 50 characters")
	}

	if dateOfBirth != nil && ageYears(*dateOfBirth, time.Now()) < minAgeYears {
		v.add("date_of_birth", "age must be at least 18 years")
	}
}

func nameLengthOK(name string) bool {
	return len([]rune(name)) >= minNameLength && len([]rune(name)) <= maxNameLength
}

// ageYears computes full years elapsed between the birth date and now.
func ageYears(birth models.Date, now time.Time) int {
	years := now.Year() - birth.Year()

	if now.Month() < birth.Month() ||
		(now.Month() == birth.Month() && now.Day() < birth.Day()) {
		years--
	}

	return years
}
