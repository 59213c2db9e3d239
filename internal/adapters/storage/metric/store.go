package metric

import (
	"context"

	domain "gymdesk/internal/domain/metric"
)

// Store persists HealthMetric state. Metrics are append-only.
type Store interface {
	Create(ctx context.Context, m domain.HealthMetric) (int64, error)
	LatestByMemberID(ctx context.Context, memberID int64) (domain.HealthMetric, error)
	ListByMemberID(ctx context.Context, memberID int64) ([]domain.HealthMetric, error)
}
