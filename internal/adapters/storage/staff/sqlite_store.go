package staff

import (
	"context"
	"database/sql"
	"errors"

	"gymdesk/internal/adapters/storage"
	domain "gymdesk/internal/domain/staff"
	"gymdesk/internal/errs"
)

const staffColumns = "id, first_name, last_name, date_of_birth, gender, email, phone, role, hire_date"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new admin staff store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func scanStaff(row interface{ Scan(...any) error }) (domain.AdminStaff, error) {
	var entity domain.AdminStaff
	var dob, gender, phone, role, hireDate sql.NullString
	err := row.Scan(
		&entity.ID,
		&entity.FirstName,
		&entity.LastName,
		&dob,
		&gender,
		&entity.Email,
		&phone,
		&role,
		&hireDate,
	)
	if err != nil {
		return domain.AdminStaff{}, err
	}
	if entity.DateOfBirth, err = storage.ScanDate(dob); err != nil {
		return domain.AdminStaff{}, err
	}
	if entity.HireDate, err = storage.ScanDate(hireDate); err != nil {
		return domain.AdminStaff{}, err
	}
	entity.Gender = gender.String
	entity.Phone = phone.String
	entity.Role = role.String
	return entity, nil
}

// GetByID retrieves an AdminStaff by its ID.
// POST: Returns the entity or a NotFound error
func (s *SQLiteStore) GetByID(ctx context.Context, id int64) (domain.AdminStaff, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+staffColumns+" FROM admin_staff WHERE id = ?", id)
	entity, err := scanStaff(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.AdminStaff{}, errs.NotFoundf("admin staff with ID %d not found", id)
	}
	return entity, err
}

// Create inserts a new AdminStaff and returns its assigned id.
// PRE: entity has been validated
func (s *SQLiteStore) Create(ctx context.Context, entity domain.AdminStaff) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO admin_staff (first_name, last_name, date_of_birth, gender, email, phone, role, hire_date)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		entity.FirstName,
		entity.LastName,
		storage.NullableDate(entity.DateOfBirth),
		storage.NullableText(entity.Gender),
		entity.Email,
		storage.NullableText(entity.Phone),
		storage.NullableText(entity.Role),
		storage.NullableDate(entity.HireDate),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// List retrieves all admin staff ordered by name.
func (s *SQLiteStore) List(ctx context.Context) ([]domain.AdminStaff, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+staffColumns+" FROM admin_staff ORDER BY last_name, first_name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.AdminStaff
	for rows.Next() {
		entity, err := scanStaff(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}
