package projections

import (
	"context"
	"testing"
	"time"

	"gymdesk/internal/domain/member"
	"gymdesk/internal/domain/session"
	"gymdesk/internal/domain/trainer"
	"gymdesk/internal/errs"
)

var scheduleToday = time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

func scheduleNow() time.Time { return scheduleToday }

// mockTrainerReader resolves one trainer.
type mockTrainerReader struct {
	trainers map[int64]trainer.Trainer
}

func (m *mockTrainerReader) GetByID(_ context.Context, id int64) (trainer.Trainer, error) {
	t, ok := m.trainers[id]
	if !ok {
		return trainer.Trainer{}, errs.NotFoundf("trainer with ID %d not found", id)
	}
	return t, nil
}

// mockSessionReader returns canned sessions and records the from date.
type mockSessionReader struct {
	sessions []session.Session
	gotFrom  time.Time
}

func (m *mockSessionReader) ListForTrainerFrom(_ context.Context, _ int64, from time.Time) ([]session.Session, error) {
	m.gotFrom = from
	return m.sessions, nil
}

// mockMemberReader resolves members for enrichment.
type mockMemberReader struct {
	members map[int64]member.Member
}

func (m *mockMemberReader) GetByID(_ context.Context, id int64) (member.Member, error) {
	e, ok := m.members[id]
	if !ok {
		return member.Member{}, errs.NotFoundf("member with ID %d not found", id)
	}
	return e, nil
}

func scheduleDeps(sessions *mockSessionReader) GetTrainerScheduleDeps {
	return GetTrainerScheduleDeps{
		TrainerStore: &mockTrainerReader{trainers: map[int64]trainer.Trainer{
			1: {ID: 1, FirstName: "Jordan", LastName: "Blake", Email: "jordan@example.com"},
		}},
		SessionStore: sessions,
		MemberStore: &mockMemberReader{members: map[int64]member.Member{
			5: {ID: 5, FirstName: "Ava", LastName: "Nguyen", Email: "ava@example.com"},
		}},
		Now: scheduleNow,
	}
}

// TestQueryGetTrainerSchedule_DefaultsToToday tests the from-date default.
func TestQueryGetTrainerSchedule_DefaultsToToday(t *testing.T) {
	sessions := &mockSessionReader{}
	result, err := QueryGetTrainerSchedule(context.Background(),
		GetTrainerScheduleQuery{TrainerID: 1}, scheduleDeps(sessions))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sessions.gotFrom.Equal(scheduleToday) {
		t.Errorf("expected from = today, got %v", sessions.gotFrom)
	}
	if result.TrainerName != "Jordan Blake" {
		t.Errorf("expected trainer name resolved, got %q", result.TrainerName)
	}
}

// TestQueryGetTrainerSchedule_Entries tests member name resolution on the
// entries.
func TestQueryGetTrainerSchedule_Entries(t *testing.T) {
	date := scheduleToday.AddDate(0, 0, 2)
	sessions := &mockSessionReader{sessions: []session.Session{
		{ID: 10, TrainerID: 1, MemberID: 5, Date: date,
			StartTime: "09:00", EndTime: "10:00", Type: session.TypePersonal},
		{ID: 11, TrainerID: 1, MemberID: 99, Date: date,
			StartTime: "10:00", EndTime: "11:00", Type: session.TypeGroup},
	}}
	result, err := QueryGetTrainerSchedule(context.Background(),
		GetTrainerScheduleQuery{TrainerID: 1}, scheduleDeps(sessions))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(result.Entries))
	}
	if result.Entries[0].MemberName != "Ava Nguyen" {
		t.Errorf("expected resolved member name, got %q", result.Entries[0].MemberName)
	}
	// a dangling member reference leaves the name blank rather than
	// failing the whole query
	if result.Entries[1].MemberName != "" {
		t.Errorf("expected blank name for unknown member, got %q", result.Entries[1].MemberName)
	}
}

// TestQueryGetTrainerSchedule_FromDateBounds tests the sanity window.
func TestQueryGetTrainerSchedule_FromDateBounds(t *testing.T) {
	sessions := &mockSessionReader{}
	deps := scheduleDeps(sessions)

	query := GetTrainerScheduleQuery{TrainerID: 1, FromDate: time.Date(1899, 12, 31, 0, 0, 0, 0, time.UTC)}
	if _, err := QueryGetTrainerSchedule(context.Background(), query, deps); !errs.IsKind(err, errs.KindInvalidInput) {
		t.Errorf("pre-1900 from date: expected InvalidInput, got %v", err)
	}

	query.FromDate = scheduleToday.AddDate(0, 0, 3651)
	if _, err := QueryGetTrainerSchedule(context.Background(), query, deps); !errs.IsKind(err, errs.KindInvalidInput) {
		t.Errorf("from date 10+ years out: expected InvalidInput, got %v", err)
	}

	query.FromDate = scheduleToday.AddDate(0, 0, -30)
	if _, err := QueryGetTrainerSchedule(context.Background(), query, deps); err != nil {
		t.Errorf("past from date inside window should pass: %v", err)
	}
}

// TestQueryGetTrainerSchedule_UnknownTrainer tests the existence check.
func TestQueryGetTrainerSchedule_UnknownTrainer(t *testing.T) {
	sessions := &mockSessionReader{}
	_, err := QueryGetTrainerSchedule(context.Background(),
		GetTrainerScheduleQuery{TrainerID: 42}, scheduleDeps(sessions))
	if !errs.IsKind(err, errs.KindNotFound) {
		t.Fatalf("expected NotFound, got %v", err)
	}
}
