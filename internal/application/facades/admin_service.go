package facades

import (
	"context"
	"database/sql"
	"time"

	"gymdesk/internal/adapters/storage"
	invoicestore "gymdesk/internal/adapters/storage/invoice"
	maintenancestore "gymdesk/internal/adapters/storage/maintenance"
	memberstore "gymdesk/internal/adapters/storage/member"
	roomstore "gymdesk/internal/adapters/storage/room"
	sessionstore "gymdesk/internal/adapters/storage/session"
	staffstore "gymdesk/internal/adapters/storage/staff"
	trainerstore "gymdesk/internal/adapters/storage/trainer"
	"gymdesk/internal/application/orchestrators"
	"gymdesk/internal/domain/invoice"
	"gymdesk/internal/domain/maintenance"
	"gymdesk/internal/domain/session"
)

// AdminService exposes the admin-facing operations.
type AdminService struct {
	db *sql.DB
}

// NewAdminService creates an AdminService on the given database.
func NewAdminService(db *sql.DB) *AdminService {
	return &AdminService{db: db}
}

// AssignRoom moves a session into a room after clearing the room's bookings.
func (s *AdminService) AssignRoom(ctx context.Context, input orchestrators.AssignRoomInput) (session.Session, error) {
	var updated session.Session
	err := storage.WithTx(ctx, s.db, func(tx storage.SQLDB) error {
		var err error
		updated, err = orchestrators.ExecuteAssignRoom(ctx, input, orchestrators.AssignRoomDeps{
			SessionStore: sessionstore.NewSQLiteStore(tx),
			RoomStore:    roomstore.NewSQLiteStore(tx),
			Now:          time.Now,
		})
		return err
	})
	return updated, shape(err, "assign room failed")
}

// LogMaintenanceIssue opens a new maintenance issue against a room.
func (s *AdminService) LogMaintenanceIssue(ctx context.Context, input orchestrators.LogMaintenanceIssueInput) (maintenance.MaintenanceIssue, error) {
	var issue maintenance.MaintenanceIssue
	err := storage.WithTx(ctx, s.db, func(tx storage.SQLDB) error {
		var err error
		issue, err = orchestrators.ExecuteLogMaintenanceIssue(ctx, input, orchestrators.LogMaintenanceIssueDeps{
			RoomStore:  roomstore.NewSQLiteStore(tx),
			StaffStore: staffstore.NewSQLiteStore(tx),
			IssueStore: maintenancestore.NewSQLiteStore(tx),
			Now:        time.Now,
		})
		return err
	})
	return issue, shape(err, "log maintenance issue failed")
}

// UpdateMaintenanceIssue applies a partial update to an issue.
func (s *AdminService) UpdateMaintenanceIssue(ctx context.Context, input orchestrators.UpdateMaintenanceIssueInput) (maintenance.MaintenanceIssue, error) {
	var issue maintenance.MaintenanceIssue
	err := storage.WithTx(ctx, s.db, func(tx storage.SQLDB) error {
		var err error
		issue, err = orchestrators.ExecuteUpdateMaintenanceIssue(ctx, input, orchestrators.UpdateMaintenanceIssueDeps{
			IssueStore: maintenancestore.NewSQLiteStore(tx),
		})
		return err
	})
	return issue, shape(err, "update maintenance issue failed")
}

// CreateInvoice bills a member, optionally for one of their sessions.
func (s *AdminService) CreateInvoice(ctx context.Context, input orchestrators.CreateInvoiceInput) (invoice.Invoice, error) {
	var inv invoice.Invoice
	err := storage.WithTx(ctx, s.db, func(tx storage.SQLDB) error {
		var err error
		inv, err = orchestrators.ExecuteCreateInvoice(ctx, input, orchestrators.CreateInvoiceDeps{
			MemberStore:  memberstore.NewSQLiteStore(tx),
			SessionStore: sessionstore.NewSQLiteStore(tx),
			InvoiceStore: invoicestore.NewSQLiteStore(tx),
			Now:          time.Now,
		})
		return err
	})
	return inv, shape(err, "create invoice failed")
}

// RecordPayment settles a pending invoice.
func (s *AdminService) RecordPayment(ctx context.Context, input orchestrators.RecordPaymentInput) (invoice.Invoice, error) {
	var inv invoice.Invoice
	err := storage.WithTx(ctx, s.db, func(tx storage.SQLDB) error {
		var err error
		inv, err = orchestrators.ExecuteRecordPayment(ctx, input, orchestrators.RecordPaymentDeps{
			InvoiceStore: invoicestore.NewSQLiteStore(tx),
			Now:          time.Now,
		})
		return err
	})
	return inv, shape(err, "record payment failed")
}

// SeedDemo loads a small demo roster into an empty database.
func (s *AdminService) SeedDemo(ctx context.Context) error {
	err := storage.WithTx(ctx, s.db, func(tx storage.SQLDB) error {
		return orchestrators.ExecuteSeedDemo(ctx, orchestrators.SeedDemoDeps{
			MemberStore:  memberstore.NewSQLiteStore(tx),
			TrainerStore: trainerstore.NewSQLiteStore(tx),
			RoomStore:    roomstore.NewSQLiteStore(tx),
			StaffStore:   staffstore.NewSQLiteStore(tx),
			Now:          time.Now,
		})
	})
	return shape(err, "seed demo data failed")
}
