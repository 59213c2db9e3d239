package maintenance

import (
	"context"
	"database/sql"
	"errors"

	"gymdesk/internal/adapters/storage"
	domain "gymdesk/internal/domain/maintenance"
	"gymdesk/internal/domain/validate"
	"gymdesk/internal/errs"
)

const issueColumns = "id, room_id, admin_id, issue_description, equipment_name, reported_date, priority, status, assigned_repair_date, resolution_date, resolution_notes"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new maintenance issue store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func scanIssue(row interface{ Scan(...any) error }) (domain.MaintenanceIssue, error) {
	var entity domain.MaintenanceIssue
	var equipment, reported, repairDate, resolutionDate, notes sql.NullString
	err := row.Scan(
		&entity.ID,
		&entity.RoomID,
		&entity.AdminID,
		&entity.Description,
		&equipment,
		&reported,
		&entity.Priority,
		&entity.Status,
		&repairDate,
		&resolutionDate,
		&notes,
	)
	if err != nil {
		return domain.MaintenanceIssue{}, err
	}
	if entity.ReportedDate, err = storage.ScanDate(reported); err != nil {
		return domain.MaintenanceIssue{}, err
	}
	if entity.AssignedRepairDate, err = storage.ScanDate(repairDate); err != nil {
		return domain.MaintenanceIssue{}, err
	}
	if entity.ResolutionDate, err = storage.ScanDate(resolutionDate); err != nil {
		return domain.MaintenanceIssue{}, err
	}
	entity.EquipmentName = equipment.String
	entity.ResolutionNotes = notes.String
	return entity, nil
}

// GetByID retrieves a MaintenanceIssue by its ID.
// POST: Returns the entity or a NotFound error
func (s *SQLiteStore) GetByID(ctx context.Context, id int64) (domain.MaintenanceIssue, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+issueColumns+" FROM maintenance_issue WHERE id = ?", id)
	entity, err := scanIssue(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.MaintenanceIssue{}, errs.NotFoundf("maintenance issue with ID %d not found", id)
	}
	return entity, err
}

// Create inserts a new MaintenanceIssue and returns its assigned id.
// PRE: entity has been validated
func (s *SQLiteStore) Create(ctx context.Context, entity domain.MaintenanceIssue) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO maintenance_issue (room_id, admin_id, issue_description, equipment_name, reported_date,
		                                priority, status, assigned_repair_date, resolution_date, resolution_notes)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entity.RoomID,
		entity.AdminID,
		entity.Description,
		storage.NullableText(entity.EquipmentName),
		validate.FormatDate(entity.ReportedDate),
		entity.Priority,
		entity.Status,
		storage.NullableDate(entity.AssignedRepairDate),
		storage.NullableDate(entity.ResolutionDate),
		storage.NullableText(entity.ResolutionNotes),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Update persists the mutable fields of an issue.
// POST: Returns a NotFound error when no issue has the given ID
func (s *SQLiteStore) Update(ctx context.Context, entity domain.MaintenanceIssue) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE maintenance_issue
		 SET priority = ?, status = ?, assigned_repair_date = ?, resolution_date = ?, resolution_notes = ?
		 WHERE id = ?`,
		entity.Priority,
		entity.Status,
		storage.NullableDate(entity.AssignedRepairDate),
		storage.NullableDate(entity.ResolutionDate),
		storage.NullableText(entity.ResolutionNotes),
		entity.ID,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.NotFoundf("maintenance issue with ID %d not found", entity.ID)
	}
	return nil
}

// ListOpen returns all issues not yet closed, most urgent first by reported
// date.
func (s *SQLiteStore) ListOpen(ctx context.Context) ([]domain.MaintenanceIssue, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+issueColumns+" FROM maintenance_issue WHERE status != ? ORDER BY reported_date, id",
		domain.StatusClosed)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.MaintenanceIssue
	for rows.Next() {
		entity, err := scanIssue(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}
