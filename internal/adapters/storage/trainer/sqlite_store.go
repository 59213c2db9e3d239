package trainer

import (
	"context"
	"database/sql"
	"errors"

	"gymdesk/internal/adapters/storage"
	domain "gymdesk/internal/domain/trainer"
	"gymdesk/internal/errs"
)

const trainerColumns = "id, first_name, last_name, date_of_birth, gender, email, phone, specialty, hire_date"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new trainer store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func scanTrainer(row interface{ Scan(...any) error }) (domain.Trainer, error) {
	var entity domain.Trainer
	var dob, gender, phone, specialty, hireDate sql.NullString
	err := row.Scan(
		&entity.ID,
		&entity.FirstName,
		&entity.LastName,
		&dob,
		&gender,
		&entity.Email,
		&phone,
		&specialty,
		&hireDate,
	)
	if err != nil {
		return domain.Trainer{}, err
	}
	if entity.DateOfBirth, err = storage.ScanDate(dob); err != nil {
		return domain.Trainer{}, err
	}
	if entity.HireDate, err = storage.ScanDate(hireDate); err != nil {
		return domain.Trainer{}, err
	}
	entity.Gender = gender.String
	entity.Phone = phone.String
	entity.Specialty = specialty.String
	return entity, nil
}

// GetByID retrieves a Trainer by its ID.
// POST: Returns the entity or a NotFound error
func (s *SQLiteStore) GetByID(ctx context.Context, id int64) (domain.Trainer, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+trainerColumns+" FROM trainer WHERE id = ?", id)
	entity, err := scanTrainer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Trainer{}, errs.NotFoundf("trainer with ID %d not found", id)
	}
	return entity, err
}

// Create inserts a new Trainer and returns its assigned id.
// PRE: entity has been validated
func (s *SQLiteStore) Create(ctx context.Context, entity domain.Trainer) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO trainer (first_name, last_name, date_of_birth, gender, email, phone, specialty, hire_date)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		entity.FirstName,
		entity.LastName,
		storage.NullableDate(entity.DateOfBirth),
		storage.NullableText(entity.Gender),
		entity.Email,
		storage.NullableText(entity.Phone),
		storage.NullableText(entity.Specialty),
		storage.NullableDate(entity.HireDate),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// List retrieves all trainers ordered by name.
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Trainer, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+trainerColumns+" FROM trainer ORDER BY last_name, first_name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Trainer
	for rows.Next() {
		entity, err := scanTrainer(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}
