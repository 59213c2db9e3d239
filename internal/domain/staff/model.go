package staff

import (
	"time"

	"gymdesk/internal/domain/validate"
)

// Max length constants for user-editable fields.
const (
	MaxNameLength  = 50
	MaxEmailLength = 100
	MaxPhoneLength = 20
	MaxRoleLength  = 50
)

// AdminStaff holds an administrative staff record.
type AdminStaff struct {
	ID          int64
	FirstName   string
	LastName    string
	DateOfBirth time.Time // zero when unspecified
	Gender      string
	Email       string
	Phone       string
	Role        string // e.g. "Facilities Manager"
	HireDate    time.Time
}

// FullName returns "First Last".
func (a *AdminStaff) FullName() string {
	return a.FirstName + " " + a.LastName
}

// Validate checks if the AdminStaff has valid data.
// POST: Returns nil if valid, InvalidInput error otherwise
func (a *AdminStaff) Validate() error {
	if _, err := validate.RequiredText("first name", a.FirstName, MaxNameLength); err != nil {
		return err
	}
	if _, err := validate.RequiredText("last name", a.LastName, MaxNameLength); err != nil {
		return err
	}
	if _, err := validate.Email(a.Email, MaxEmailLength); err != nil {
		return err
	}
	if _, err := validate.OptionalText("phone", a.Phone, MaxPhoneLength); err != nil {
		return err
	}
	if _, err := validate.OptionalText("role", a.Role, MaxRoleLength); err != nil {
		return err
	}
	return nil
}
