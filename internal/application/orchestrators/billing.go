package orchestrators

import (
	"context"
	"log/slog"
	"time"

	"gymdesk/internal/domain/invoice"
	"gymdesk/internal/domain/session"
	"gymdesk/internal/domain/validate"
	"gymdesk/internal/errs"
)

// SessionStoreForBilling defines the read-only session check used by the
// billing orchestrators.
type SessionStoreForBilling interface {
	GetByID(ctx context.Context, id int64) (session.Session, error)
}

// InvoiceStoreForOrchestrator defines the store interface needed by the
// billing orchestrators.
type InvoiceStoreForOrchestrator interface {
	GetByID(ctx context.Context, id int64) (invoice.Invoice, error)
	GetByNumber(ctx context.Context, number string) (invoice.Invoice, error)
	Create(ctx context.Context, i invoice.Invoice) (int64, error)
	UpdatePayment(ctx context.Context, i invoice.Invoice) error
}

// CreateInvoiceInput carries input for the create invoice orchestrator.
type CreateInvoiceInput struct {
	Number             string
	PayerID            int64
	SessionID          int64     // 0 = not tied to a session
	InvoiceDate        time.Time // zero defaults to today
	DueDate            time.Time
	Amount             float64
	ServiceDescription string
}

// CreateInvoiceDeps holds dependencies for CreateInvoice.
type CreateInvoiceDeps struct {
	MemberStore  MemberStoreForLookup
	SessionStore SessionStoreForBilling
	InvoiceStore InvoiceStoreForOrchestrator
	Now          func() time.Time
}

// ExecuteCreateInvoice bills a member, optionally for one of their sessions.
// PRE: payer exists; any referenced session belongs to the payer; invoice
// number is unique
// POST: Invoice persisted with status Pending and amount rounded to 2dp
func ExecuteCreateInvoice(ctx context.Context, input CreateInvoiceInput, deps CreateInvoiceDeps) (invoice.Invoice, error) {
	invoiceDate := input.InvoiceDate
	if invoiceDate.IsZero() {
		invoiceDate = deps.Now()
	}

	inv := invoice.Invoice{
		Number:             input.Number,
		PayerID:            input.PayerID,
		SessionID:          input.SessionID,
		InvoiceDate:        invoiceDate,
		DueDate:            input.DueDate,
		Amount:             validate.Round2(input.Amount),
		PaymentStatus:      invoice.StatusPending,
		ServiceDescription: input.ServiceDescription,
	}
	if err := inv.Validate(); err != nil {
		return invoice.Invoice{}, err
	}

	if _, err := deps.MemberStore.GetByID(ctx, input.PayerID); err != nil {
		return invoice.Invoice{}, err
	}
	if input.SessionID != 0 {
		s, err := deps.SessionStore.GetByID(ctx, input.SessionID)
		if err != nil {
			return invoice.Invoice{}, err
		}
		if s.MemberID != input.PayerID {
			return invoice.Invoice{}, errs.Invalidf("session %d does not belong to member %d", input.SessionID, input.PayerID)
		}
	}

	if _, err := deps.InvoiceStore.GetByNumber(ctx, inv.Number); err == nil {
		return invoice.Invoice{}, errs.Invalidf("invoice number %s already exists", inv.Number)
	} else if !errs.IsKind(err, errs.KindNotFound) {
		return invoice.Invoice{}, err
	}

	id, err := deps.InvoiceStore.Create(ctx, inv)
	if err != nil {
		return invoice.Invoice{}, err
	}
	inv.ID = id

	slog.Info("billing_event", "event", "invoice_created",
		"invoice_id", inv.ID, "invoice_number", inv.Number, "payer_id", inv.PayerID, "amount", inv.Amount)
	return inv, nil
}

// RecordPaymentInput carries input for the record payment orchestrator.
type RecordPaymentInput struct {
	InvoiceID int64
	Method    string
	PaidDate  time.Time // zero defaults to today
}

// RecordPaymentDeps holds dependencies for RecordPayment.
type RecordPaymentDeps struct {
	InvoiceStore InvoiceStoreForOrchestrator
	Now          func() time.Time
}

// ExecuteRecordPayment settles a pending invoice. Paying twice is rejected
// with the already-paid sentinel.
// PRE: invoice exists and is Pending; paid date within [invoice date, today]
// POST: Invoice marked Paid with method and paid date, or an error and no
// change
func ExecuteRecordPayment(ctx context.Context, input RecordPaymentInput, deps RecordPaymentDeps) (invoice.Invoice, error) {
	if err := validate.PositiveID("invoice ID", input.InvoiceID); err != nil {
		return invoice.Invoice{}, err
	}
	method, err := validate.RequiredText("payment method", input.Method, invoice.MaxMethodLength)
	if err != nil {
		return invoice.Invoice{}, err
	}

	inv, err := deps.InvoiceStore.GetByID(ctx, input.InvoiceID)
	if err != nil {
		return invoice.Invoice{}, err
	}

	paidDate := input.PaidDate
	if paidDate.IsZero() {
		paidDate = deps.Now()
	}
	if err := inv.RecordPayment(method, paidDate); err != nil {
		return invoice.Invoice{}, err
	}
	if err := deps.InvoiceStore.UpdatePayment(ctx, inv); err != nil {
		return invoice.Invoice{}, err
	}

	slog.Info("billing_event", "event", "payment_recorded",
		"invoice_id", inv.ID, "invoice_number", inv.Number, "method", inv.PaymentMethod)
	return inv, nil
}
