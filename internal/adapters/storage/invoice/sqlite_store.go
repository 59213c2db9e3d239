package invoice

import (
	"context"
	"database/sql"
	"errors"

	"gymdesk/internal/adapters/storage"
	domain "gymdesk/internal/domain/invoice"
	"gymdesk/internal/domain/validate"
	"gymdesk/internal/errs"
)

const invoiceColumns = "id, invoice_number, payer_id, session_id, invoice_date, due_date, amount, payment_method, payment_status, service_description, paid_date"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new invoice store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func scanInvoice(row interface{ Scan(...any) error }) (domain.Invoice, error) {
	var entity domain.Invoice
	var sessionID sql.NullInt64
	var invoiceDate, dueDate, method, description, paidDate sql.NullString
	err := row.Scan(
		&entity.ID,
		&entity.Number,
		&entity.PayerID,
		&sessionID,
		&invoiceDate,
		&dueDate,
		&entity.Amount,
		&method,
		&entity.PaymentStatus,
		&description,
		&paidDate,
	)
	if err != nil {
		return domain.Invoice{}, err
	}
	if entity.InvoiceDate, err = storage.ScanDate(invoiceDate); err != nil {
		return domain.Invoice{}, err
	}
	if entity.DueDate, err = storage.ScanDate(dueDate); err != nil {
		return domain.Invoice{}, err
	}
	if entity.PaidDate, err = storage.ScanDate(paidDate); err != nil {
		return domain.Invoice{}, err
	}
	entity.SessionID = sessionID.Int64
	entity.PaymentMethod = method.String
	entity.ServiceDescription = description.String
	return entity, nil
}

// GetByID retrieves an Invoice by its ID.
// POST: Returns the entity or a NotFound error
func (s *SQLiteStore) GetByID(ctx context.Context, id int64) (domain.Invoice, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+invoiceColumns+" FROM invoice WHERE id = ?", id)
	entity, err := scanInvoice(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Invoice{}, errs.NotFoundf("invoice with ID %d not found", id)
	}
	return entity, err
}

// GetByNumber retrieves an Invoice by its unique invoice number.
// POST: Returns the entity or a NotFound error
func (s *SQLiteStore) GetByNumber(ctx context.Context, number string) (domain.Invoice, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+invoiceColumns+" FROM invoice WHERE invoice_number = ?", number)
	entity, err := scanInvoice(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Invoice{}, errs.NotFoundf("invoice %q not found", number)
	}
	return entity, err
}

// Create inserts a new Invoice and returns its assigned id.
// PRE: entity has been validated and its number checked for uniqueness
func (s *SQLiteStore) Create(ctx context.Context, entity domain.Invoice) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO invoice (invoice_number, payer_id, session_id, invoice_date, due_date, amount,
		                      payment_method, payment_status, service_description, paid_date)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entity.Number,
		entity.PayerID,
		storage.NullableID(entity.SessionID),
		validate.FormatDate(entity.InvoiceDate),
		validate.FormatDate(entity.DueDate),
		entity.Amount,
		storage.NullableText(entity.PaymentMethod),
		entity.PaymentStatus,
		storage.NullableText(entity.ServiceDescription),
		storage.NullableDate(entity.PaidDate),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// UpdatePayment persists the invoice's payment fields.
// POST: Returns a NotFound error when no invoice has the given ID
func (s *SQLiteStore) UpdatePayment(ctx context.Context, entity domain.Invoice) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE invoice SET payment_status = ?, payment_method = ?, paid_date = ? WHERE id = ?",
		entity.PaymentStatus,
		storage.NullableText(entity.PaymentMethod),
		storage.NullableDate(entity.PaidDate),
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
		return errs.NotFoundf("invoice with ID %d not found", entity.ID)
	}
	return nil
}
