package orchestrators

import (
	"context"
	"log/slog"
	"time"

	"gymdesk/internal/domain/session"
	"gymdesk/internal/domain/validate"
	"gymdesk/internal/errs"
)

// SessionStoreForAvailability defines the store interface needed by the
// availability orchestrator.
type SessionStoreForAvailability interface {
	ListForTrainerOnDate(ctx context.Context, trainerID int64, date time.Time) ([]session.Session, error)
}

// SetAvailabilityInput carries input for the set availability orchestrator.
type SetAvailabilityInput struct {
	TrainerID int64
	Date      time.Time
	StartTime string // HH:MM
	EndTime   string // HH:MM
}

// SetAvailabilityDeps holds dependencies for SetAvailability.
type SetAvailabilityDeps struct {
	TrainerStore TrainerStoreForLookup
	SessionStore SessionStoreForAvailability
	GenerateRef  func() string
	Now          func() time.Time
}

// AvailabilityConfirmation is the result of an availability check. Nothing
// is written; the reference id lets callers quote the check later.
type AvailabilityConfirmation struct {
	Reference         string
	TrainerID         int64
	Date              time.Time
	StartTime         string
	EndTime           string
	Available         bool
	ConflictSessionID int64 // 0 when available
}

// ExecuteSetAvailability verifies a trainer slot against existing bookings.
// A slot may span up to a full day, unlike a bookable session.
// PRE: trainer exists; date within today..+1 year; start < end
// POST: Confirmation returned; no state changes
func ExecuteSetAvailability(ctx context.Context, input SetAvailabilityInput, deps SetAvailabilityDeps) (AvailabilityConfirmation, error) {
	if err := validate.PositiveID("trainer ID", input.TrainerID); err != nil {
		return AvailabilityConfirmation{}, err
	}
	if _, err := deps.TrainerStore.GetByID(ctx, input.TrainerID); err != nil {
		return AvailabilityConfirmation{}, err
	}
	if err := checkBookingDate(input.Date, deps.Now()); err != nil {
		return AvailabilityConfirmation{}, err
	}

	iv, err := session.NewInterval(input.StartTime, input.EndTime)
	if err != nil {
		return AvailabilityConfirmation{}, err
	}
	if d := iv.Duration(); d < session.MinDurationMinutes {
		return AvailabilityConfirmation{}, errs.Invalidf("availability slot must be at least %d minutes", session.MinDurationMinutes)
	} else if d > session.MaxAvailabilityMinutes {
		return AvailabilityConfirmation{}, errs.Invalidf("availability slot cannot exceed 24 hours")
	}

	existing, err := deps.SessionStore.ListForTrainerOnDate(ctx, input.TrainerID, input.Date)
	if err != nil {
		return AvailabilityConfirmation{}, err
	}
	hit, err := findOverlap(existing, iv, 0)
	if err != nil {
		return AvailabilityConfirmation{}, err
	}

	conf := AvailabilityConfirmation{
		Reference: deps.GenerateRef(),
		TrainerID: input.TrainerID,
		Date:      input.Date,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
		Available: hit == nil,
	}
	if hit != nil {
		conf.ConflictSessionID = hit.ID
	}

	slog.Info("schedule_event", "event", "availability_checked",
		"reference", conf.Reference, "trainer_id", conf.TrainerID,
		"date", validate.FormatDate(conf.Date), "available", conf.Available)
	return conf, nil
}
