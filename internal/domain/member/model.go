package member

import (
	"time"

	"gymdesk/internal/domain/validate"
)

// Max length constants for user-editable fields.
const (
	MaxNameLength    = 50
	MaxEmailLength   = 100
	MaxPhoneLength   = 20
	MaxAddressLength = 200
)

// Membership status constants
const (
	StatusActive    = "Active"
	StatusInactive  = "Inactive"
	StatusSuspended = "Suspended"
	StatusCancelled = "Cancelled"
)

// ValidStatuses contains all valid membership status values.
var ValidStatuses = []string{StatusActive, StatusInactive, StatusSuspended, StatusCancelled}

// ValidGenders contains all valid gender codes. Empty means unspecified.
var ValidGenders = []string{"M", "F", "O"}

// Member holds a registered gym member.
type Member struct {
	ID               int64
	FirstName        string
	LastName         string
	DateOfBirth      time.Time // zero when unspecified
	Gender           string    // M, F, O, or empty
	Email            string    // stored trimmed and case-folded
	Phone            string
	Address          string
	JoinDate         time.Time
	MembershipStatus string
}

// FullName returns "First Last".
func (m *Member) FullName() string {
	return m.FirstName + " " + m.LastName
}

// IsActive returns true if the membership is currently active.
func (m *Member) IsActive() bool {
	return m.MembershipStatus == StatusActive
}

// Validate checks if the Member has valid data.
// PRE: Member struct is populated
// POST: Returns nil if valid, InvalidInput error otherwise
func (m *Member) Validate() error {
	if _, err := validate.RequiredText("first name", m.FirstName, MaxNameLength); err != nil {
		return err
	}
	if _, err := validate.RequiredText("last name", m.LastName, MaxNameLength); err != nil {
		return err
	}
	if _, err := validate.Email(m.Email, MaxEmailLength); err != nil {
		return err
	}
	if !m.DateOfBirth.IsZero() {
		if err := validate.DateOfBirth(m.DateOfBirth, time.Now()); err != nil {
			return err
		}
	}
	if m.Gender != "" {
		if err := validate.OneOf("gender", m.Gender, ValidGenders); err != nil {
			return err
		}
	}
	if _, err := validate.OptionalText("phone", m.Phone, MaxPhoneLength); err != nil {
		return err
	}
	if _, err := validate.OptionalText("address", m.Address, MaxAddressLength); err != nil {
		return err
	}
	return validate.OneOf("membership status", m.MembershipStatus, ValidStatuses)
}
