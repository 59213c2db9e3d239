package session

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gymdesk/internal/adapters/storage"
	domain "gymdesk/internal/domain/session"
	"gymdesk/internal/domain/validate"
	"gymdesk/internal/errs"
)

const sessionColumns = "id, trainer_id, member_id, room_id, session_date, start_time, end_time, duration_minutes, session_type, max_capacity, current_enrollment, notes"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new session store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func scanSession(row interface{ Scan(...any) error }) (domain.Session, error) {
	var entity domain.Session
	var roomID sql.NullInt64
	var date sql.NullString
	var duration, maxCapacity sql.NullInt64
	var notes sql.NullString
	err := row.Scan(
		&entity.ID,
		&entity.TrainerID,
		&entity.MemberID,
		&roomID,
		&date,
		&entity.StartTime,
		&entity.EndTime,
		&duration,
		&entity.Type,
		&maxCapacity,
		&entity.CurrentEnrollment,
		&notes,
	)
	if err != nil {
		return domain.Session{}, err
	}
	if entity.Date, err = storage.ScanDate(date); err != nil {
		return domain.Session{}, err
	}
	entity.RoomID = roomID.Int64
	entity.DurationMinutes = int(duration.Int64)
	entity.MaxCapacity = int(maxCapacity.Int64)
	entity.Notes = notes.String
	return entity, nil
}

// GetByID retrieves a Session by its ID.
// POST: Returns the entity or a NotFound error
func (s *SQLiteStore) GetByID(ctx context.Context, id int64) (domain.Session, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+sessionColumns+" FROM session WHERE id = ?", id)
	entity, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Session{}, errs.NotFoundf("session with ID %d not found", id)
	}
	return entity, err
}

// Create inserts a new Session and returns its assigned id.
// PRE: entity has been validated and cleared of booking conflicts
func (s *SQLiteStore) Create(ctx context.Context, entity domain.Session) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO session (trainer_id, member_id, room_id, session_date, start_time, end_time,
		                      duration_minutes, session_type, max_capacity, current_enrollment, notes)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entity.TrainerID,
		entity.MemberID,
		storage.NullableID(entity.RoomID),
		validate.FormatDate(entity.Date),
		entity.StartTime,
		entity.EndTime,
		entity.DurationMinutes,
		entity.Type,
		entity.MaxCapacity,
		entity.CurrentEnrollment,
		storage.NullableText(entity.Notes),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// UpdateRoom changes a session's room assignment.
// POST: Returns a NotFound error when no session has the given ID
func (s *SQLiteStore) UpdateRoom(ctx context.Context, sessionID, roomID int64) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE session SET room_id = ? WHERE id = ?",
		storage.NullableID(roomID), sessionID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.NotFoundf("session with ID %d not found", sessionID)
	}
	return nil
}

func (s *SQLiteStore) listOnDate(ctx context.Context, column string, id int64, date time.Time) ([]domain.Session, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+sessionColumns+" FROM session WHERE "+column+" = ? AND session_date = ? ORDER BY start_time",
		id, validate.FormatDate(date))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Session
	for rows.Next() {
		entity, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}

// ListForTrainerOnDate returns a trainer's sessions on one date, ordered by
// start time.
func (s *SQLiteStore) ListForTrainerOnDate(ctx context.Context, trainerID int64, date time.Time) ([]domain.Session, error) {
	return s.listOnDate(ctx, "trainer_id", trainerID, date)
}

// ListForRoomOnDate returns a room's sessions on one date, ordered by start
// time.
func (s *SQLiteStore) ListForRoomOnDate(ctx context.Context, roomID int64, date time.Time) ([]domain.Session, error) {
	return s.listOnDate(ctx, "room_id", roomID, date)
}

// ListForMemberOnDate returns a member's sessions on one date, ordered by
// start time.
func (s *SQLiteStore) ListForMemberOnDate(ctx context.Context, memberID int64, date time.Time) ([]domain.Session, error) {
	return s.listOnDate(ctx, "member_id", memberID, date)
}

// ListForTrainerFrom returns a trainer's sessions on or after a date,
// ordered by date then start time.
func (s *SQLiteStore) ListForTrainerFrom(ctx context.Context, trainerID int64, from time.Time) ([]domain.Session, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+sessionColumns+" FROM session WHERE trainer_id = ? AND session_date >= ? ORDER BY session_date, start_time",
		trainerID, validate.FormatDate(from))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Session
	for rows.Next() {
		entity, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}
