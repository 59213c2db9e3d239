package facades

import (
	"context"
	"database/sql"
	"time"

	"gymdesk/internal/adapters/storage"
	goalstore "gymdesk/internal/adapters/storage/goal"
	memberstore "gymdesk/internal/adapters/storage/member"
	metricstore "gymdesk/internal/adapters/storage/metric"
	roomstore "gymdesk/internal/adapters/storage/room"
	sessionstore "gymdesk/internal/adapters/storage/session"
	trainerstore "gymdesk/internal/adapters/storage/trainer"
	"gymdesk/internal/application/orchestrators"
	"gymdesk/internal/domain/goal"
	"gymdesk/internal/domain/member"
	"gymdesk/internal/domain/metric"
	"gymdesk/internal/domain/session"
)

// MemberService exposes the member-facing operations.
type MemberService struct {
	db *sql.DB
}

// NewMemberService creates a MemberService on the given database.
func NewMemberService(db *sql.DB) *MemberService {
	return &MemberService{db: db}
}

// RegisterMember creates a new member with an Active membership.
func (s *MemberService) RegisterMember(ctx context.Context, input orchestrators.RegisterMemberInput) (member.Member, error) {
	var m member.Member
	err := storage.WithTx(ctx, s.db, func(tx storage.SQLDB) error {
		var err error
		m, err = orchestrators.ExecuteRegisterMember(ctx, input, orchestrators.RegisterMemberDeps{
			MemberStore: memberstore.NewSQLiteStore(tx),
			Now:         time.Now,
		})
		return err
	})
	return m, shape(err, "register member failed")
}

// UpdateProfile applies a partial update to a member's profile.
func (s *MemberService) UpdateProfile(ctx context.Context, input orchestrators.UpdateProfileInput) (member.Member, error) {
	var m member.Member
	err := storage.WithTx(ctx, s.db, func(tx storage.SQLDB) error {
		var err error
		m, err = orchestrators.ExecuteUpdateProfile(ctx, input, orchestrators.UpdateProfileDeps{
			MemberStore: memberstore.NewSQLiteStore(tx),
		})
		return err
	})
	return m, shape(err, "update profile failed")
}

// AddFitnessGoal records a new goal for a member.
func (s *MemberService) AddFitnessGoal(ctx context.Context, input orchestrators.AddFitnessGoalInput) (goal.FitnessGoal, error) {
	var g goal.FitnessGoal
	err := storage.WithTx(ctx, s.db, func(tx storage.SQLDB) error {
		var err error
		g, err = orchestrators.ExecuteAddFitnessGoal(ctx, input, orchestrators.AddFitnessGoalDeps{
			MemberStore: memberstore.NewSQLiteStore(tx),
			GoalStore:   goalstore.NewSQLiteStore(tx),
			Now:         time.Now,
		})
		return err
	})
	return g, shape(err, "add fitness goal failed")
}

// LogHealthMetric appends a measurement snapshot to a member's history.
func (s *MemberService) LogHealthMetric(ctx context.Context, input orchestrators.LogHealthMetricInput) (metric.HealthMetric, error) {
	var h metric.HealthMetric
	err := storage.WithTx(ctx, s.db, func(tx storage.SQLDB) error {
		var err error
		h, err = orchestrators.ExecuteLogHealthMetric(ctx, input, orchestrators.LogHealthMetricDeps{
			MemberStore: memberstore.NewSQLiteStore(tx),
			MetricStore: metricstore.NewSQLiteStore(tx),
			Now:         time.Now,
		})
		return err
	})
	return h, shape(err, "log health metric failed")
}

// ScheduleSession books a session after full conflict detection.
func (s *MemberService) ScheduleSession(ctx context.Context, input orchestrators.ScheduleSessionInput) (session.Session, error) {
	var booked session.Session
	err := storage.WithTx(ctx, s.db, func(tx storage.SQLDB) error {
		var err error
		booked, err = orchestrators.ExecuteScheduleSession(ctx, input, orchestrators.ScheduleSessionDeps{
			MemberStore:  memberstore.NewSQLiteStore(tx),
			TrainerStore: trainerstore.NewSQLiteStore(tx),
			RoomStore:    roomstore.NewSQLiteStore(tx),
			SessionStore: sessionstore.NewSQLiteStore(tx),
			Now:          time.Now,
		})
		return err
	})
	return booked, shape(err, "schedule session failed")
}
