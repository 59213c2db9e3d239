package goal

import (
	"context"
	"database/sql"
	"errors"

	"gymdesk/internal/adapters/storage"
	domain "gymdesk/internal/domain/goal"
	"gymdesk/internal/domain/validate"
	"gymdesk/internal/errs"
)

const goalColumns = "id, member_id, goal_type, target_body_weight, target_body_fat_percentage, set_date, target_date, goal_status, notes"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new fitness goal store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func scanGoal(row interface{ Scan(...any) error }) (domain.FitnessGoal, error) {
	var entity domain.FitnessGoal
	var weight, bodyFat sql.NullFloat64
	var setDate, targetDate, notes sql.NullString
	err := row.Scan(
		&entity.ID,
		&entity.MemberID,
		&entity.GoalType,
		&weight,
		&bodyFat,
		&setDate,
		&targetDate,
		&entity.Status,
		&notes,
	)
	if err != nil {
		return domain.FitnessGoal{}, err
	}
	if entity.SetDate, err = storage.ScanDate(setDate); err != nil {
		return domain.FitnessGoal{}, err
	}
	if entity.TargetDate, err = storage.ScanDate(targetDate); err != nil {
		return domain.FitnessGoal{}, err
	}
	if weight.Valid {
		entity.TargetBodyWeight = &weight.Float64
	}
	if bodyFat.Valid {
		entity.TargetBodyFatPercentage = &bodyFat.Float64
	}
	entity.Notes = notes.String
	return entity, nil
}

func nullableFloat(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

// Create inserts a new FitnessGoal and returns its assigned id.
// PRE: entity has been validated
func (s *SQLiteStore) Create(ctx context.Context, entity domain.FitnessGoal) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO fitness_goal (member_id, goal_type, target_body_weight, target_body_fat_percentage, set_date, target_date, goal_status, notes)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		entity.MemberID,
		entity.GoalType,
		nullableFloat(entity.TargetBodyWeight),
		nullableFloat(entity.TargetBodyFatPercentage),
		validate.FormatDate(entity.SetDate),
		storage.NullableDate(entity.TargetDate),
		entity.Status,
		storage.NullableText(entity.Notes),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// LatestByMemberID returns the member's most recently set goal, breaking
// ties on insertion order.
// POST: Returns the entity or a NotFound error
func (s *SQLiteStore) LatestByMemberID(ctx context.Context, memberID int64) (domain.FitnessGoal, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+goalColumns+" FROM fitness_goal WHERE member_id = ? ORDER BY set_date DESC, id DESC LIMIT 1",
		memberID)
	entity, err := scanGoal(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.FitnessGoal{}, errs.NotFoundf("no fitness goals set for member %d", memberID)
	}
	return entity, err
}

// ListByMemberID returns all of a member's goals, newest first.
func (s *SQLiteStore) ListByMemberID(ctx context.Context, memberID int64) ([]domain.FitnessGoal, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+goalColumns+" FROM fitness_goal WHERE member_id = ? ORDER BY set_date DESC, id DESC",
		memberID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.FitnessGoal
	for rows.Next() {
		entity, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}
