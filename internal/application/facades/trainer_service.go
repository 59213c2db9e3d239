package facades

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	goalstore "gymdesk/internal/adapters/storage/goal"
	memberstore "gymdesk/internal/adapters/storage/member"
	metricstore "gymdesk/internal/adapters/storage/metric"
	sessionstore "gymdesk/internal/adapters/storage/session"
	trainerstore "gymdesk/internal/adapters/storage/trainer"
	"gymdesk/internal/application/orchestrators"
	"gymdesk/internal/application/projections"
)

// TrainerService exposes the trainer-facing operations. Every operation here
// is read-only, so none of them open a transaction.
type TrainerService struct {
	db *sql.DB
}

// NewTrainerService creates a TrainerService on the given database.
func NewTrainerService(db *sql.DB) *TrainerService {
	return &TrainerService{db: db}
}

// SetAvailability verifies a trainer slot against existing bookings and
// returns a referenced confirmation. Nothing is written.
func (s *TrainerService) SetAvailability(ctx context.Context, input orchestrators.SetAvailabilityInput) (orchestrators.AvailabilityConfirmation, error) {
	conf, err := orchestrators.ExecuteSetAvailability(ctx, input, orchestrators.SetAvailabilityDeps{
		TrainerStore: trainerstore.NewSQLiteStore(s.db),
		SessionStore: sessionstore.NewSQLiteStore(s.db),
		GenerateRef:  uuid.NewString,
		Now:          time.Now,
	})
	return conf, shape(err, "set availability failed")
}

// ViewSchedule lists a trainer's sessions from a date onward.
func (s *TrainerService) ViewSchedule(ctx context.Context, query projections.GetTrainerScheduleQuery) (projections.GetTrainerScheduleResult, error) {
	result, err := projections.QueryGetTrainerSchedule(ctx, query, projections.GetTrainerScheduleDeps{
		TrainerStore: trainerstore.NewSQLiteStore(s.db),
		SessionStore: sessionstore.NewSQLiteStore(s.db),
		MemberStore:  memberstore.NewSQLiteStore(s.db),
		Now:          time.Now,
	})
	return result, shape(err, "view schedule failed")
}

// LookupMember searches members by name, enriched with each hit's latest
// goal and metric.
func (s *TrainerService) LookupMember(ctx context.Context, query projections.FindMembersQuery) (projections.FindMembersResult, error) {
	result, err := projections.QueryFindMembers(ctx, query, projections.FindMembersDeps{
		MemberStore: memberstore.NewSQLiteStore(s.db),
		GoalStore:   goalstore.NewSQLiteStore(s.db),
		MetricStore: metricstore.NewSQLiteStore(s.db),
	})
	return result, shape(err, "lookup member failed")
}
