package orchestrators

import (
	"context"
	"log/slog"
	"time"

	"gymdesk/internal/domain/session"
	"gymdesk/internal/domain/validate"
	"gymdesk/internal/errs"
)

// SessionStoreForRoomAssignment defines the store interface needed by the
// assign room orchestrator.
type SessionStoreForRoomAssignment interface {
	GetByID(ctx context.Context, id int64) (session.Session, error)
	UpdateRoom(ctx context.Context, sessionID, roomID int64) error
	ListForRoomOnDate(ctx context.Context, roomID int64, date time.Time) ([]session.Session, error)
}

// AssignRoomInput carries input for the assign room orchestrator.
type AssignRoomInput struct {
	SessionID int64
	RoomID    int64
}

// AssignRoomDeps holds dependencies for AssignRoom.
type AssignRoomDeps struct {
	SessionStore SessionStoreForRoomAssignment
	RoomStore    RoomStoreForLookup
	Now          func() time.Time
}

// ExecuteAssignRoom moves a session into a room after clearing the room's
// bookings for that slot. The session's own row is excluded from the scan so
// re-homing a session never collides with itself.
// PRE: session and room exist; session is not in the past
// POST: Session's room updated, or an error and no change
func ExecuteAssignRoom(ctx context.Context, input AssignRoomInput, deps AssignRoomDeps) (session.Session, error) {
	if err := validate.PositiveID("session ID", input.SessionID); err != nil {
		return session.Session{}, err
	}
	if err := validate.PositiveID("room ID", input.RoomID); err != nil {
		return session.Session{}, err
	}

	s, err := deps.SessionStore.GetByID(ctx, input.SessionID)
	if err != nil {
		return session.Session{}, err
	}
	if validate.DateBefore(s.Date, deps.Now()) {
		return session.Session{}, errs.Invalidf("cannot reassign a session in the past")
	}
	if s.RoomID == input.RoomID {
		return session.Session{}, errs.Invalidf("session is already assigned to room %d", input.RoomID)
	}

	r, err := deps.RoomStore.GetByID(ctx, input.RoomID)
	if err != nil {
		return session.Session{}, err
	}
	if s.Type == session.TypeGroup && r.Capacity > 0 && s.MaxCapacity > r.Capacity {
		return session.Session{}, errs.Invalidf("session capacity %d exceeds room capacity %d", s.MaxCapacity, r.Capacity)
	}

	iv, err := s.Interval()
	if err != nil {
		return session.Session{}, err
	}
	existing, err := deps.SessionStore.ListForRoomOnDate(ctx, input.RoomID, s.Date)
	if err != nil {
		return session.Session{}, err
	}
	if hit, err := findOverlap(existing, iv, s.ID); err != nil {
		return session.Session{}, err
	} else if hit != nil {
		return session.Session{}, errs.Conflictf("room is not available: conflicts with session %d (%s)", hit.ID, hit.Window())
	}

	if err := deps.SessionStore.UpdateRoom(ctx, s.ID, input.RoomID); err != nil {
		return session.Session{}, err
	}
	s.RoomID = input.RoomID

	slog.Info("schedule_event", "event", "room_assigned",
		"session_id", s.ID, "room_id", s.RoomID, "date", validate.FormatDate(s.Date))
	return s, nil
}
