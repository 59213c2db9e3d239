package projections

import (
	"context"
	"time"

	"gymdesk/internal/domain/member"
	"gymdesk/internal/domain/session"
	"gymdesk/internal/domain/trainer"
	"gymdesk/internal/domain/validate"
	"gymdesk/internal/errs"
)

// TrainerReader resolves trainers for schedule queries.
type TrainerReader interface {
	GetByID(ctx context.Context, id int64) (trainer.Trainer, error)
}

// SessionReader lists sessions for schedule queries.
type SessionReader interface {
	ListForTrainerFrom(ctx context.Context, trainerID int64, from time.Time) ([]session.Session, error)
}

// MemberReader resolves members for enrichment.
type MemberReader interface {
	GetByID(ctx context.Context, id int64) (member.Member, error)
}

// The from-date sanity window: nothing before 1900, nothing past ten years
// out.
const maxScheduleLookaheadDays = 3650

var minScheduleDate = time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)

// GetTrainerScheduleQuery carries query parameters.
type GetTrainerScheduleQuery struct {
	TrainerID int64
	FromDate  time.Time // zero defaults to today
}

// ScheduleEntry is one upcoming session on a trainer's schedule.
type ScheduleEntry struct {
	SessionID  int64
	Date       time.Time
	StartTime  string
	EndTime    string
	Type       string
	MemberID   int64
	MemberName string
	RoomID     int64 // 0 = no room assigned
}

// GetTrainerScheduleResult carries the query result.
type GetTrainerScheduleResult struct {
	TrainerID   int64
	TrainerName string
	FromDate    time.Time
	Entries     []ScheduleEntry
}

// GetTrainerScheduleDeps holds dependencies for GetTrainerSchedule.
type GetTrainerScheduleDeps struct {
	TrainerStore TrainerReader
	SessionStore SessionReader
	MemberStore  MemberReader
	Now          func() time.Time
}

// QueryGetTrainerSchedule lists a trainer's sessions from a date onward,
// ordered by date then start time, with member names resolved.
// PRE: trainer exists; from-date within the sanity window
// POST: Returns the ordered schedule; no state changes
func QueryGetTrainerSchedule(ctx context.Context, query GetTrainerScheduleQuery, deps GetTrainerScheduleDeps) (GetTrainerScheduleResult, error) {
	if err := validate.PositiveID("trainer ID", query.TrainerID); err != nil {
		return GetTrainerScheduleResult{}, err
	}

	t, err := deps.TrainerStore.GetByID(ctx, query.TrainerID)
	if err != nil {
		return GetTrainerScheduleResult{}, err
	}

	from := query.FromDate
	today := deps.Now()
	if from.IsZero() {
		from = today
	}
	if validate.DateBefore(from, minScheduleDate) {
		return GetTrainerScheduleResult{}, errs.Invalidf("from date is before 1900")
	}
	if validate.DaysBetween(today, from) > maxScheduleLookaheadDays {
		return GetTrainerScheduleResult{}, errs.Invalidf("from date cannot be more than 10 years in the future")
	}

	sessions, err := deps.SessionStore.ListForTrainerFrom(ctx, query.TrainerID, from)
	if err != nil {
		return GetTrainerScheduleResult{}, err
	}

	result := GetTrainerScheduleResult{
		TrainerID:   t.ID,
		TrainerName: t.FullName(),
		FromDate:    from,
	}
	for _, s := range sessions {
		entry := ScheduleEntry{
			SessionID: s.ID,
			Date:      s.Date,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
			Type:      s.Type,
			MemberID:  s.MemberID,
			RoomID:    s.RoomID,
		}
		m, err := deps.MemberStore.GetByID(ctx, s.MemberID)
		if err == nil {
			entry.MemberName = m.FullName()
		} else if !errs.IsKind(err, errs.KindNotFound) {
			return GetTrainerScheduleResult{}, err
		}
		result.Entries = append(result.Entries, entry)
	}
	return result, nil
}
