// Package metric holds health measurement snapshots. Metrics are
// append-only: a row is never updated or deleted once recorded, so a
// member's full measurement history is preserved.
package metric

import (
	"time"

	"gymdesk/internal/domain/validate"
	"gymdesk/internal/errs"
)

// Measurement bounds.
const (
	MaxHeightCm      = 300
	MaxWeightKg      = 1000
	MinHeartRateBpm  = 30
	MaxHeartRateBpm  = 200
	MaxNotesLength   = 500
	MaxHistoryDays   = 36500 // 100 years
)

// HealthMetric is one timestamped snapshot of a member's measurements.
// Optional measurements are pointers; nil means not taken that day.
type HealthMetric struct {
	ID                int64
	MemberID          int64
	RecordedDate      time.Time
	Height            *float64 // cm
	Weight            *float64 // kg
	BodyFatPercentage *float64
	RestingHeartRate  *int // bpm
	Notes             string
}

// Validate checks if the HealthMetric has valid data.
// POST: Returns nil if valid, InvalidInput error otherwise
func (h *HealthMetric) Validate() error {
	if err := validate.PositiveID("member ID", h.MemberID); err != nil {
		return err
	}
	today := time.Now()
	if validate.DateAfter(h.RecordedDate, today) {
		return errs.Invalidf("recorded date cannot be in the future")
	}
	if validate.DaysBetween(h.RecordedDate, today) > MaxHistoryDays {
		return errs.Invalidf("recorded date is too far in the past")
	}
	if err := validate.AtLeastOne("height, weight, body fat percentage, resting heart rate",
		h.Height != nil, h.Weight != nil, h.BodyFatPercentage != nil, h.RestingHeartRate != nil); err != nil {
		return err
	}
	if h.Height != nil {
		if err := validate.PositiveMax("height", *h.Height, MaxHeightCm); err != nil {
			return err
		}
	}
	if h.Weight != nil {
		if err := validate.PositiveMax("weight", *h.Weight, MaxWeightKg); err != nil {
			return err
		}
	}
	if h.BodyFatPercentage != nil {
		if err := validate.Percent("body fat percentage", *h.BodyFatPercentage); err != nil {
			return err
		}
	}
	if h.RestingHeartRate != nil {
		if err := validate.IntRange("resting heart rate", *h.RestingHeartRate, MinHeartRateBpm, MaxHeartRateBpm); err != nil {
			return err
		}
	}
	if _, err := validate.OptionalText("notes", h.Notes, MaxNotesLength); err != nil {
		return err
	}
	return nil
}
