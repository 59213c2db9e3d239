package orchestrators

import (
	"context"
	"log/slog"
	"time"

	"gymdesk/internal/domain/room"
	"gymdesk/internal/domain/session"
	"gymdesk/internal/domain/trainer"
	"gymdesk/internal/domain/validate"
	"gymdesk/internal/errs"
)

// TrainerStoreForLookup defines the read-only trainer check shared by the
// scheduling orchestrators.
type TrainerStoreForLookup interface {
	GetByID(ctx context.Context, id int64) (trainer.Trainer, error)
}

// RoomStoreForLookup defines the read-only room check shared by the
// scheduling orchestrators.
type RoomStoreForLookup interface {
	GetByID(ctx context.Context, id int64) (room.Room, error)
}

// SessionStoreForScheduling defines the store interface needed by the
// schedule session orchestrator.
type SessionStoreForScheduling interface {
	Create(ctx context.Context, s session.Session) (int64, error)
	ListForTrainerOnDate(ctx context.Context, trainerID int64, date time.Time) ([]session.Session, error)
	ListForRoomOnDate(ctx context.Context, roomID int64, date time.Time) ([]session.Session, error)
	ListForMemberOnDate(ctx context.Context, memberID int64, date time.Time) ([]session.Session, error)
}

// ScheduleSessionInput carries input for the schedule session orchestrator.
type ScheduleSessionInput struct {
	TrainerID   int64
	MemberID    int64
	RoomID      int64 // 0 = no room
	Date        time.Time
	StartTime   string // HH:MM
	EndTime     string // HH:MM
	Type        string
	MaxCapacity int // group classes only
	Notes       string
}

// ScheduleSessionDeps holds dependencies for ScheduleSession.
type ScheduleSessionDeps struct {
	MemberStore  MemberStoreForLookup
	TrainerStore TrainerStoreForLookup
	RoomStore    RoomStoreForLookup
	SessionStore SessionStoreForScheduling
	Now          func() time.Time
}

// checkBookingDate enforces the shared booking window: not in the past and
// at most one year out.
func checkBookingDate(date, today time.Time) error {
	if date.IsZero() {
		return errs.Invalidf("session date is required")
	}
	if validate.DateBefore(date, today) {
		return errs.Invalidf("session date cannot be in the past")
	}
	if validate.DaysBetween(today, date) > session.MaxBookingHorizonDays {
		return errs.Invalidf("session date cannot be more than 1 year in advance")
	}
	return nil
}

// findOverlap returns the first existing session whose interval overlaps iv,
// skipping the session with id exclude (0 excludes nothing).
func findOverlap(existing []session.Session, iv session.Interval, exclude int64) (*session.Session, error) {
	for i := range existing {
		other := &existing[i]
		if other.ID == exclude {
			continue
		}
		otherIv, err := other.Interval()
		if err != nil {
			return nil, err
		}
		if iv.Overlaps(otherIv) {
			return other, nil
		}
	}
	return nil, nil
}

// ExecuteScheduleSession books a session after clearing it against every
// party's existing bookings for the day. The scans run trainer, then room,
// then member; the first collision rejects the booking.
// PRE: member, trainer, and any room exist; date within today..+1 year
// POST: Session persisted with recomputed duration and zero enrollment, or
// a Conflict error naming the colliding session and no change
func ExecuteScheduleSession(ctx context.Context, input ScheduleSessionInput, deps ScheduleSessionDeps) (session.Session, error) {
	s := session.Session{
		TrainerID:   input.TrainerID,
		MemberID:    input.MemberID,
		RoomID:      input.RoomID,
		Date:        input.Date,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		Type:        input.Type,
		MaxCapacity: input.MaxCapacity,
		Notes:       input.Notes,
	}
	if err := s.Validate(); err != nil {
		return session.Session{}, err
	}
	if err := s.RecomputeDuration(); err != nil {
		return session.Session{}, err
	}
	if err := checkBookingDate(s.Date, deps.Now()); err != nil {
		return session.Session{}, err
	}

	if _, err := deps.MemberStore.GetByID(ctx, s.MemberID); err != nil {
		return session.Session{}, err
	}
	if _, err := deps.TrainerStore.GetByID(ctx, s.TrainerID); err != nil {
		return session.Session{}, err
	}
	if s.RoomID != 0 {
		r, err := deps.RoomStore.GetByID(ctx, s.RoomID)
		if err != nil {
			return session.Session{}, err
		}
		if s.Type == session.TypeGroup && r.Capacity > 0 && s.MaxCapacity > r.Capacity {
			return session.Session{}, errs.Invalidf("max capacity %d exceeds room capacity %d", s.MaxCapacity, r.Capacity)
		}
	}

	iv, err := s.Interval()
	if err != nil {
		return session.Session{}, err
	}

	trainerSessions, err := deps.SessionStore.ListForTrainerOnDate(ctx, s.TrainerID, s.Date)
	if err != nil {
		return session.Session{}, err
	}
	if hit, err := findOverlap(trainerSessions, iv, 0); err != nil {
		return session.Session{}, err
	} else if hit != nil {
		return session.Session{}, errs.Conflictf("trainer is not available: conflicts with session %d (%s)", hit.ID, hit.Window())
	}

	if s.RoomID != 0 {
		roomSessions, err := deps.SessionStore.ListForRoomOnDate(ctx, s.RoomID, s.Date)
		if err != nil {
			return session.Session{}, err
		}
		if hit, err := findOverlap(roomSessions, iv, 0); err != nil {
			return session.Session{}, err
		} else if hit != nil {
			return session.Session{}, errs.Conflictf("room is not available: conflicts with session %d (%s)", hit.ID, hit.Window())
		}
	}

	memberSessions, err := deps.SessionStore.ListForMemberOnDate(ctx, s.MemberID, s.Date)
	if err != nil {
		return session.Session{}, err
	}
	if hit, err := findOverlap(memberSessions, iv, 0); err != nil {
		return session.Session{}, err
	} else if hit != nil {
		return session.Session{}, errs.Conflictf("member already has a booking: conflicts with session %d (%s)", hit.ID, hit.Window())
	}

	id, err := deps.SessionStore.Create(ctx, s)
	if err != nil {
		return session.Session{}, err
	}
	s.ID = id

	slog.Info("schedule_event", "event", "session_scheduled",
		"session_id", s.ID, "trainer_id", s.TrainerID, "member_id", s.MemberID,
		"date", validate.FormatDate(s.Date), "window", s.Window(), "type", s.Type)
	return s, nil
}
