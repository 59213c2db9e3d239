package orchestrators

import (
	"context"
	"log/slog"
	"time"

	"gymdesk/internal/domain/goal"
	"gymdesk/internal/domain/member"
)

// MemberStoreForLookup defines the read-only member check shared by the
// fitness orchestrators.
type MemberStoreForLookup interface {
	GetByID(ctx context.Context, id int64) (member.Member, error)
}

// GoalStoreForOrchestrator defines the store interface needed by the add
// fitness goal orchestrator.
type GoalStoreForOrchestrator interface {
	Create(ctx context.Context, g goal.FitnessGoal) (int64, error)
}

// AddFitnessGoalInput carries input for the add fitness goal orchestrator.
type AddFitnessGoalInput struct {
	MemberID                int64
	GoalType                string
	TargetBodyWeight        *float64
	TargetBodyFatPercentage *float64
	TargetDate              time.Time // zero when open-ended
	Notes                   string
}

// AddFitnessGoalDeps holds dependencies for AddFitnessGoal.
type AddFitnessGoalDeps struct {
	MemberStore MemberStoreForLookup
	GoalStore   GoalStoreForOrchestrator
	Now         func() time.Time
}

// ExecuteAddFitnessGoal records a new goal for a member. Existing goals are
// never modified.
// PRE: member exists; at least one target is provided
// POST: Goal persisted with set date = today and status Active
func ExecuteAddFitnessGoal(ctx context.Context, input AddFitnessGoalInput, deps AddFitnessGoalDeps) (goal.FitnessGoal, error) {
	g := goal.FitnessGoal{
		MemberID:                input.MemberID,
		GoalType:                input.GoalType,
		TargetBodyWeight:        input.TargetBodyWeight,
		TargetBodyFatPercentage: input.TargetBodyFatPercentage,
		SetDate:                 deps.Now(),
		TargetDate:              input.TargetDate,
		Status:                  goal.StatusActive,
		Notes:                   input.Notes,
	}
	if err := g.Validate(); err != nil {
		return goal.FitnessGoal{}, err
	}

	if _, err := deps.MemberStore.GetByID(ctx, input.MemberID); err != nil {
		return goal.FitnessGoal{}, err
	}

	id, err := deps.GoalStore.Create(ctx, g)
	if err != nil {
		return goal.FitnessGoal{}, err
	}
	g.ID = id

	slog.Info("fitness_event", "event", "goal_added", "goal_id", g.ID, "member_id", g.MemberID, "goal_type", g.GoalType)
	return g, nil
}
