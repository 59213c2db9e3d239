package metric

import (
	"context"
	"database/sql"
	"errors"

	"gymdesk/internal/adapters/storage"
	domain "gymdesk/internal/domain/metric"
	"gymdesk/internal/domain/validate"
	"gymdesk/internal/errs"
)

const metricColumns = "id, member_id, recorded_date, height, weight, body_fat_percentage, resting_heart_rate, notes"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new health metric store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func scanMetric(row interface{ Scan(...any) error }) (domain.HealthMetric, error) {
	var entity domain.HealthMetric
	var date sql.NullString
	var height, weight, bodyFat sql.NullFloat64
	var heartRate sql.NullInt64
	var notes sql.NullString
	err := row.Scan(
		&entity.ID,
		&entity.MemberID,
		&date,
		&height,
		&weight,
		&bodyFat,
		&heartRate,
		&notes,
	)
	if err != nil {
		return domain.HealthMetric{}, err
	}
	if entity.RecordedDate, err = storage.ScanDate(date); err != nil {
		return domain.HealthMetric{}, err
	}
	if height.Valid {
		entity.Height = &height.Float64
	}
	if weight.Valid {
		entity.Weight = &weight.Float64
	}
	if bodyFat.Valid {
		entity.BodyFatPercentage = &bodyFat.Float64
	}
	if heartRate.Valid {
		hr := int(heartRate.Int64)
		entity.RestingHeartRate = &hr
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

func nullableInt(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

// Create inserts a new HealthMetric and returns its assigned id.
// PRE: entity has been validated
func (s *SQLiteStore) Create(ctx context.Context, entity domain.HealthMetric) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO health_metric (member_id, recorded_date, height, weight, body_fat_percentage, resting_heart_rate, notes)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entity.MemberID,
		validate.FormatDate(entity.RecordedDate),
		nullableFloat(entity.Height),
		nullableFloat(entity.Weight),
		nullableFloat(entity.BodyFatPercentage),
		nullableInt(entity.RestingHeartRate),
		storage.NullableText(entity.Notes),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// LatestByMemberID returns the member's most recent metric by recorded date,
// breaking ties on insertion order.
// POST: Returns the entity or a NotFound error
func (s *SQLiteStore) LatestByMemberID(ctx context.Context, memberID int64) (domain.HealthMetric, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+metricColumns+" FROM health_metric WHERE member_id = ? ORDER BY recorded_date DESC, id DESC LIMIT 1",
		memberID)
	entity, err := scanMetric(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.HealthMetric{}, errs.NotFoundf("no health metrics recorded for member %d", memberID)
	}
	return entity, err
}

// ListByMemberID returns all of a member's metrics, newest first.
func (s *SQLiteStore) ListByMemberID(ctx context.Context, memberID int64) ([]domain.HealthMetric, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+metricColumns+" FROM health_metric WHERE member_id = ? ORDER BY recorded_date DESC, id DESC",
		memberID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.HealthMetric
	for rows.Next() {
		entity, err := scanMetric(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}
