package trainer

import (
	"time"

	"gymdesk/internal/domain/validate"
)

// Max length constants for user-editable fields.
const (
	MaxNameLength      = 50
	MaxEmailLength     = 100
	MaxPhoneLength     = 20
	MaxSpecialtyLength = 100
)

// Trainer holds a fitness trainer.
type Trainer struct {
	ID          int64
	FirstName   string
	LastName    string
	DateOfBirth time.Time // zero when unspecified
	Gender      string
	Email       string
	Phone       string
	Specialty   string
	HireDate    time.Time // zero when unspecified
}

// FullName returns "First Last".
func (t *Trainer) FullName() string {
	return t.FirstName + " " + t.LastName
}

// Validate checks if the Trainer has valid data.
// POST: Returns nil if valid, InvalidInput error otherwise
func (t *Trainer) Validate() error {
	if _, err := validate.RequiredText("first name", t.FirstName, MaxNameLength); err != nil {
		return err
	}
	if _, err := validate.RequiredText("last name", t.LastName, MaxNameLength); err != nil {
		return err
	}
	if _, err := validate.Email(t.Email, MaxEmailLength); err != nil {
		return err
	}
	if _, err := validate.OptionalText("phone", t.Phone, MaxPhoneLength); err != nil {
		return err
	}
	if _, err := validate.OptionalText("specialty", t.Specialty, MaxSpecialtyLength); err != nil {
		return err
	}
	return nil
}
