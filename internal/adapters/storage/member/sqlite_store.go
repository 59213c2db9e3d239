package member

import (
	"context"
	"database/sql"
	"errors"

	"gymdesk/internal/adapters/storage"
	domain "gymdesk/internal/domain/member"
	"gymdesk/internal/domain/validate"
	"gymdesk/internal/errs"
)

const memberColumns = "id, first_name, last_name, date_of_birth, gender, email, phone, address, join_date, membership_status"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new member store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func scanMember(row interface{ Scan(...any) error }) (domain.Member, error) {
	var entity domain.Member
	var dob, gender, phone, address, joinDate sql.NullString
	err := row.Scan(
		&entity.ID,
		&entity.FirstName,
		&entity.LastName,
		&dob,
		&gender,
		&entity.Email,
		&phone,
		&address,
		&joinDate,
		&entity.MembershipStatus,
	)
	if err != nil {
		return domain.Member{}, err
	}
	if entity.DateOfBirth, err = storage.ScanDate(dob); err != nil {
		return domain.Member{}, err
	}
	if entity.JoinDate, err = storage.ScanDate(joinDate); err != nil {
		return domain.Member{}, err
	}
	entity.Gender = gender.String
	entity.Phone = phone.String
	entity.Address = address.String
	return entity, nil
}

// GetByID retrieves a Member by its ID.
// POST: Returns the entity or a NotFound error
func (s *SQLiteStore) GetByID(ctx context.Context, id int64) (domain.Member, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+memberColumns+" FROM member WHERE id = ?", id)
	entity, err := scanMember(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Member{}, errs.NotFoundf("member with ID %d not found", id)
	}
	return entity, err
}

// GetByEmail retrieves a Member by case-folded email.
// POST: Returns the entity or a NotFound error
func (s *SQLiteStore) GetByEmail(ctx context.Context, email string) (domain.Member, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+memberColumns+" FROM member WHERE email = ?", email)
	entity, err := scanMember(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Member{}, errs.NotFoundf("member with email %q not found", email)
	}
	return entity, err
}

// Create inserts a new Member and returns its assigned id.
// PRE: entity has been validated
func (s *SQLiteStore) Create(ctx context.Context, entity domain.Member) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO member (first_name, last_name, date_of_birth, gender, email, phone, address, join_date, membership_status)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entity.FirstName,
		entity.LastName,
		storage.NullableDate(entity.DateOfBirth),
		storage.NullableText(entity.Gender),
		entity.Email,
		storage.NullableText(entity.Phone),
		storage.NullableText(entity.Address),
		validate.FormatDate(entity.JoinDate),
		entity.MembershipStatus,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Update persists changes to an existing Member.
// PRE: entity has been validated and entity.ID is set
func (s *SQLiteStore) Update(ctx context.Context, entity domain.Member) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE member SET first_name = ?, last_name = ?, date_of_birth = ?, gender = ?,
		 email = ?, phone = ?, address = ?, membership_status = ? WHERE id = ?`,
		entity.FirstName,
		entity.LastName,
		storage.NullableDate(entity.DateOfBirth),
		storage.NullableText(entity.Gender),
		entity.Email,
		storage.NullableText(entity.Phone),
		storage.NullableText(entity.Address),
		entity.MembershipStatus,
		entity.ID,
	)
	return err
}

// Count returns the total number of members.
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM member").Scan(&count)
	return count, err
}

// Search finds members whose names match the filter, case-insensitively.
// Multi-token queries match first/last tokens in either order and fall back
// to containment in the concatenated full name.
// POST: Returns at most filter.Limit members ordered by last then first name
func (s *SQLiteStore) Search(ctx context.Context, filter SearchFilter) ([]domain.Member, error) {
	term := "%" + validate.EscapeLike(filter.Term) + "%"

	var query string
	var args []any
	if filter.First != "" && filter.Last != "" {
		first := "%" + validate.EscapeLike(filter.First) + "%"
		last := "%" + validate.EscapeLike(filter.Last) + "%"
		query = "SELECT " + memberColumns + ` FROM member WHERE
			(first_name LIKE ? ESCAPE '\' AND last_name LIKE ? ESCAPE '\')
			OR (last_name LIKE ? ESCAPE '\' AND first_name LIKE ? ESCAPE '\')
			OR first_name LIKE ? ESCAPE '\'
			OR last_name LIKE ? ESCAPE '\'
			OR (first_name || ' ' || last_name) LIKE ? ESCAPE '\'
			ORDER BY last_name, first_name LIMIT ?`
		args = []any{first, last, first, last, term, term, term, filter.Limit}
	} else {
		query = "SELECT " + memberColumns + ` FROM member WHERE
			first_name LIKE ? ESCAPE '\' OR last_name LIKE ? ESCAPE '\'
			ORDER BY last_name, first_name LIMIT ?`
		args = []any{term, term, filter.Limit}
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Member
	for rows.Next() {
		entity, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}
