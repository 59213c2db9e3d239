package goal

import (
	"time"

	"gymdesk/internal/domain/validate"
	"gymdesk/internal/errs"
)

// Goal status constants
const (
	StatusActive    = "Active"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
	StatusOnHold    = "On Hold"
)

// ValidStatuses contains all valid goal status values.
var ValidStatuses = []string{StatusActive, StatusCompleted, StatusCancelled, StatusOnHold}

// Limits for goal fields.
const (
	MaxTypeLength     = 50
	MaxNotesLength    = 500
	MaxWeightKg       = 1000
	MaxHorizonDays    = 3650 // 10 years
)

// FitnessGoal is one target a member is working toward. A member may hold
// several goals over time; new goals never replace old ones.
type FitnessGoal struct {
	ID                      int64
	MemberID                int64
	GoalType                string
	TargetBodyWeight        *float64 // kg, nil when not targeted
	TargetBodyFatPercentage *float64 // nil when not targeted
	SetDate                 time.Time
	TargetDate              time.Time // zero when open-ended
	Status                  string
	Notes                   string
}

// Validate checks if the FitnessGoal has valid data.
// POST: Returns nil if valid, InvalidInput error otherwise
func (g *FitnessGoal) Validate() error {
	if err := validate.PositiveID("member ID", g.MemberID); err != nil {
		return err
	}
	if _, err := validate.RequiredText("goal type", g.GoalType, MaxTypeLength); err != nil {
		return err
	}
	if err := validate.AtLeastOne("target body weight, target body fat percentage",
		g.TargetBodyWeight != nil, g.TargetBodyFatPercentage != nil); err != nil {
		return err
	}
	if g.TargetBodyWeight != nil {
		if err := validate.PositiveMax("target body weight", *g.TargetBodyWeight, MaxWeightKg); err != nil {
			return err
		}
	}
	if g.TargetBodyFatPercentage != nil {
		if err := validate.Percent("target body fat percentage", *g.TargetBodyFatPercentage); err != nil {
			return err
		}
	}
	if !g.TargetDate.IsZero() {
		today := time.Now()
		if validate.DateBefore(g.TargetDate, today) {
			return errs.Invalidf("target date cannot be in the past")
		}
		if validate.DaysBetween(today, g.TargetDate) > MaxHorizonDays {
			return errs.Invalidf("target date is too far in the future")
		}
	}
	if err := validate.OneOf("goal status", g.Status, ValidStatuses); err != nil {
		return err
	}
	if _, err := validate.OptionalText("notes", g.Notes, MaxNotesLength); err != nil {
		return err
	}
	return nil
}
