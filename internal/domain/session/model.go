package session

import (
	"fmt"
	"time"

	"gymdesk/internal/domain/validate"
	"gymdesk/internal/errs"
)

// Session type constants
const (
	TypePersonal = "Personal Training"
	TypeGroup    = "Group Class"
)

// ValidTypes contains all valid session type values.
var ValidTypes = []string{TypePersonal, TypeGroup}

// Duration and booking limits, in minutes and days.
const (
	MinDurationMinutes     = 15
	MaxDurationMinutes     = 480  // 8 hours for a session
	MaxAvailabilityMinutes = 1440 // 24 hours for an availability slot
	MaxCapacity            = 100
	MaxBookingHorizonDays  = 365
	MaxNotesLength         = 500
)

// TimeLayout is the HH:MM format used for times of day.
const TimeLayout = "15:04"

// Session represents a personal training session or group class occupying
// a trainer, a member, and optionally a room for one dated time slot.
type Session struct {
	ID                int64
	TrainerID         int64
	MemberID          int64
	RoomID            int64 // 0 = no room assigned
	Date              time.Time
	StartTime         string // HH:MM
	EndTime           string // HH:MM
	DurationMinutes   int
	Type              string
	MaxCapacity       int // 0 for personal training
	CurrentEnrollment int
	Notes             string
}

// Interval is a half-open time range [Start, End) in minutes since midnight.
// The end instant is excluded, so two sessions may legally abut.
type Interval struct {
	Start int
	End   int
}

// ParseTimeOfDay converts an HH:MM string to minutes since midnight.
func ParseTimeOfDay(hhmm string) (int, error) {
	t, err := time.Parse(TimeLayout, hhmm)
	if err != nil {
		return 0, errs.Invalidf("invalid time %q (want HH:MM)", hhmm)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// NewInterval parses a start/end pair and requires start < end.
func NewInterval(start, end string) (Interval, error) {
	s, err := ParseTimeOfDay(start)
	if err != nil {
		return Interval{}, err
	}
	e, err := ParseTimeOfDay(end)
	if err != nil {
		return Interval{}, err
	}
	if s >= e {
		return Interval{}, errs.Invalidf("start time must be before end time")
	}
	return Interval{Start: s, End: e}, nil
}

// Duration returns the interval length in minutes.
func (iv Interval) Duration() int {
	return iv.End - iv.Start
}

// Overlaps reports whether two half-open intervals share any instant.
// Strict inequality on both bounds makes touching intervals non-conflicting.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start < other.End && iv.End > other.Start
}

// Window renders the interval bounds for conflict messages.
func (s *Session) Window() string {
	return fmt.Sprintf("%s - %s", s.StartTime, s.EndTime)
}

// Interval parses the session's time bounds.
func (s *Session) Interval() (Interval, error) {
	return NewInterval(s.StartTime, s.EndTime)
}

// Validate checks if the Session has valid data. Date-window rules for new
// bookings are enforced by the scheduling operation, not here, so stored
// past sessions stay readable.
// POST: Returns nil if valid, InvalidInput error otherwise
func (s *Session) Validate() error {
	if err := validate.PositiveID("trainer ID", s.TrainerID); err != nil {
		return err
	}
	if err := validate.PositiveID("member ID", s.MemberID); err != nil {
		return err
	}
	if s.RoomID < 0 {
		return errs.Invalidf("room ID must be a positive integer if provided")
	}
	if s.Date.IsZero() {
		return errs.Invalidf("session date is required")
	}
	iv, err := s.Interval()
	if err != nil {
		return err
	}
	if d := iv.Duration(); d < MinDurationMinutes {
		return errs.Invalidf("session duration must be at least %d minutes", MinDurationMinutes)
	} else if d > MaxDurationMinutes {
		return errs.Invalidf("session duration cannot exceed %d hours", MaxDurationMinutes/60)
	}
	if err := validate.OneOf("session type", s.Type, ValidTypes); err != nil {
		return err
	}
	if s.Type == TypeGroup {
		if s.MaxCapacity <= 0 {
			return errs.Invalidf("group classes must have a positive max capacity")
		}
		if s.MaxCapacity > MaxCapacity {
			return errs.Invalidf("max capacity cannot exceed %d", MaxCapacity)
		}
		if s.CurrentEnrollment < 0 || s.CurrentEnrollment > s.MaxCapacity {
			return errs.Invalidf("enrollment must be between 0 and max capacity")
		}
	}
	if _, err := validate.OptionalText("notes", s.Notes, MaxNotesLength); err != nil {
		return err
	}
	return nil
}

// RecomputeDuration refreshes DurationMinutes from the time bounds.
// Must be called whenever either bound changes.
func (s *Session) RecomputeDuration() error {
	iv, err := s.Interval()
	if err != nil {
		return err
	}
	s.DurationMinutes = iv.Duration()
	return nil
}
