package orchestrators

import (
	"context"
	"log/slog"
	"time"

	"gymdesk/internal/domain/metric"
)

// MetricStoreForOrchestrator defines the store interface needed by the log
// health metric orchestrator.
type MetricStoreForOrchestrator interface {
	Create(ctx context.Context, m metric.HealthMetric) (int64, error)
}

// LogHealthMetricInput carries input for the log health metric orchestrator.
type LogHealthMetricInput struct {
	MemberID          int64
	RecordedDate      time.Time // zero defaults to today
	Height            *float64
	Weight            *float64
	BodyFatPercentage *float64
	RestingHeartRate  *int
	Notes             string
}

// LogHealthMetricDeps holds dependencies for LogHealthMetric.
type LogHealthMetricDeps struct {
	MemberStore MemberStoreForLookup
	MetricStore MetricStoreForOrchestrator
	Now         func() time.Time
}

// ExecuteLogHealthMetric appends a measurement snapshot to a member's
// history. Prior rows are never touched.
// PRE: member exists; at least one measurement is provided
// POST: Metric persisted
func ExecuteLogHealthMetric(ctx context.Context, input LogHealthMetricInput, deps LogHealthMetricDeps) (metric.HealthMetric, error) {
	recorded := input.RecordedDate
	if recorded.IsZero() {
		recorded = deps.Now()
	}

	h := metric.HealthMetric{
		MemberID:          input.MemberID,
		RecordedDate:      recorded,
		Height:            input.Height,
		Weight:            input.Weight,
		BodyFatPercentage: input.BodyFatPercentage,
		RestingHeartRate:  input.RestingHeartRate,
		Notes:             input.Notes,
	}
	if err := h.Validate(); err != nil {
		return metric.HealthMetric{}, err
	}

	if _, err := deps.MemberStore.GetByID(ctx, input.MemberID); err != nil {
		return metric.HealthMetric{}, err
	}

	id, err := deps.MetricStore.Create(ctx, h)
	if err != nil {
		return metric.HealthMetric{}, err
	}
	h.ID = id

	slog.Info("fitness_event", "event", "metric_logged", "metric_id", h.ID, "member_id", h.MemberID)
	return h, nil
}
