package room

import (
	"gymdesk/internal/domain/validate"
	"gymdesk/internal/errs"
)

// Max length constants for user-editable fields.
const (
	MaxNumberLength      = 10
	MaxTypeLength        = 50
	MaxPermissionsLength = 100
)

// Room holds a bookable gym room or facility.
type Room struct {
	ID                int64
	Number            string // unique room number, e.g. "101" or "A2"
	Capacity          int    // 0 when unknown
	Type              string // e.g. "Studio", "Weights Floor"
	AccessPermissions string
}

// Validate checks if the Room has valid data.
// POST: Returns nil if valid, InvalidInput error otherwise
func (r *Room) Validate() error {
	if _, err := validate.RequiredText("room number", r.Number, MaxNumberLength); err != nil {
		return err
	}
	if r.Capacity < 0 {
		return errs.Invalidf("room capacity cannot be negative")
	}
	if _, err := validate.OptionalText("room type", r.Type, MaxTypeLength); err != nil {
		return err
	}
	if _, err := validate.OptionalText("access permissions", r.AccessPermissions, MaxPermissionsLength); err != nil {
		return err
	}
	return nil
}
