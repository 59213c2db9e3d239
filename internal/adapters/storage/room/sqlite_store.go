package room

import (
	"context"
	"database/sql"
	"errors"

	"gymdesk/internal/adapters/storage"
	domain "gymdesk/internal/domain/room"
	"gymdesk/internal/errs"
)

const roomColumns = "id, room_number, capacity, room_type, access_permissions"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new room store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func scanRoom(row interface{ Scan(...any) error }) (domain.Room, error) {
	var entity domain.Room
	var capacity sql.NullInt64
	var roomType, perms sql.NullString
	err := row.Scan(&entity.ID, &entity.Number, &capacity, &roomType, &perms)
	if err != nil {
		return domain.Room{}, err
	}
	entity.Capacity = int(capacity.Int64)
	entity.Type = roomType.String
	entity.AccessPermissions = perms.String
	return entity, nil
}

// GetByID retrieves a Room by its ID.
// POST: Returns the entity or a NotFound error
func (s *SQLiteStore) GetByID(ctx context.Context, id int64) (domain.Room, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+roomColumns+" FROM room WHERE id = ?", id)
	entity, err := scanRoom(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Room{}, errs.NotFoundf("room with ID %d not found", id)
	}
	return entity, err
}

// Create inserts a new Room and returns its assigned id.
// PRE: entity has been validated
func (s *SQLiteStore) Create(ctx context.Context, entity domain.Room) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO room (room_number, capacity, room_type, access_permissions)
		 VALUES (?, ?, ?, ?)`,
		entity.Number,
		entity.Capacity,
		storage.NullableText(entity.Type),
		storage.NullableText(entity.AccessPermissions),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// List retrieves all rooms ordered by room number.
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Room, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+roomColumns+" FROM room ORDER BY room_number")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Room
	for rows.Next() {
		entity, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}
