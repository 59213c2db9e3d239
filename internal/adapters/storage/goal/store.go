package goal

import (
	"context"

	domain "gymdesk/internal/domain/goal"
)

// Store persists FitnessGoal state. Goals accumulate; new goals never
// replace old ones.
type Store interface {
	Create(ctx context.Context, g domain.FitnessGoal) (int64, error)
	LatestByMemberID(ctx context.Context, memberID int64) (domain.FitnessGoal, error)
	ListByMemberID(ctx context.Context, memberID int64) ([]domain.FitnessGoal, error)
}
