package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// SQLDB is the database interface used by all stores. Both *sql.DB and
// *sql.Tx satisfy it, so the same store code runs standalone for reads and
// inside a facade-owned transaction for writes.
type SQLDB interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Compile-time checks that *sql.DB and *sql.Tx satisfy SQLDB.
var (
	_ SQLDB = (*sql.DB)(nil)
	_ SQLDB = (*sql.Tx)(nil)
)

// WithTx runs fn inside a transaction. The transaction commits only when fn
// returns nil; on any failure (including a commit-time failure) the
// transaction is rolled back entirely before the error is returned.
func WithTx(ctx context.Context, db *sql.DB, fn func(tx SQLDB) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

// InitDB initializes the database schema.
// PRE: db is a valid database connection
// POST: All tables are created, WAL mode and foreign keys enabled
func InitDB(db *sql.DB) error {
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS member (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		date_of_birth TEXT,
		gender TEXT,
		email TEXT NOT NULL UNIQUE,
		phone TEXT,
		address TEXT,
		join_date TEXT NOT NULL,
		membership_status TEXT NOT NULL DEFAULT 'Active'
	);

	CREATE TABLE IF NOT EXISTS trainer (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		date_of_birth TEXT,
		gender TEXT,
		email TEXT NOT NULL UNIQUE,
		phone TEXT,
		specialty TEXT,
		hire_date TEXT
	);

	CREATE TABLE IF NOT EXISTS admin_staff (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		date_of_birth TEXT,
		gender TEXT,
		email TEXT NOT NULL UNIQUE,
		phone TEXT,
		role TEXT,
		hire_date TEXT
	);

	CREATE TABLE IF NOT EXISTS room (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		room_number TEXT NOT NULL UNIQUE,
		capacity INTEGER,
		room_type TEXT,
		access_permissions TEXT
	);

	CREATE TABLE IF NOT EXISTS session (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		trainer_id INTEGER NOT NULL REFERENCES trainer(id) ON DELETE CASCADE,
		member_id INTEGER NOT NULL REFERENCES member(id) ON DELETE CASCADE,
		room_id INTEGER REFERENCES room(id) ON DELETE SET NULL,
		session_date TEXT NOT NULL,
		start_time TEXT NOT NULL,
		end_time TEXT NOT NULL,
		duration_minutes INTEGER,
		session_type TEXT NOT NULL,
		max_capacity INTEGER,
		current_enrollment INTEGER NOT NULL DEFAULT 0,
		notes TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_session_trainer_date ON session(trainer_id, session_date);
	CREATE INDEX IF NOT EXISTS idx_session_room_date ON session(room_id, session_date);
	CREATE INDEX IF NOT EXISTS idx_session_member_date ON session(member_id, session_date);

	CREATE TABLE IF NOT EXISTS health_metric (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		member_id INTEGER NOT NULL REFERENCES member(id) ON DELETE CASCADE,
		recorded_date TEXT NOT NULL,
		height REAL,
		weight REAL,
		body_fat_percentage REAL,
		resting_heart_rate INTEGER,
		notes TEXT
	);

	CREATE TABLE IF NOT EXISTS fitness_goal (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		member_id INTEGER NOT NULL REFERENCES member(id) ON DELETE CASCADE,
		goal_type TEXT NOT NULL,
		target_body_weight REAL,
		target_body_fat_percentage REAL,
		set_date TEXT NOT NULL,
		target_date TEXT,
		goal_status TEXT NOT NULL DEFAULT 'Active',
		notes TEXT
	);

	CREATE TABLE IF NOT EXISTS invoice (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		invoice_number TEXT NOT NULL UNIQUE,
		payer_id INTEGER NOT NULL REFERENCES member(id) ON DELETE CASCADE,
		session_id INTEGER REFERENCES session(id) ON DELETE SET NULL,
		invoice_date TEXT NOT NULL,
		due_date TEXT NOT NULL,
		amount REAL NOT NULL,
		payment_method TEXT,
		payment_status TEXT NOT NULL DEFAULT 'Pending',
		service_description TEXT,
		paid_date TEXT
	);

	CREATE TABLE IF NOT EXISTS maintenance_issue (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		room_id INTEGER NOT NULL REFERENCES room(id) ON DELETE CASCADE,
		admin_id INTEGER NOT NULL REFERENCES admin_staff(id) ON DELETE CASCADE,
		issue_description TEXT NOT NULL,
		equipment_name TEXT,
		reported_date TEXT NOT NULL,
		priority TEXT NOT NULL DEFAULT 'Medium',
		status TEXT NOT NULL DEFAULT 'Open',
		assigned_repair_date TEXT,
		resolution_date TEXT,
		resolution_notes TEXT
	);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}
