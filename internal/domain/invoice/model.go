package invoice

import (
	"time"

	"gymdesk/internal/domain/validate"
	"gymdesk/internal/errs"
)

// Payment status constants. Payment is a one-shot transition: an invoice
// moves Pending -> Paid exactly once and never back.
const (
	StatusPending = "Pending"
	StatusPaid    = "Paid"
)

// ValidStatuses contains all valid payment status values.
var ValidStatuses = []string{StatusPending, StatusPaid}

// Limits for invoice fields.
const (
	MaxNumberLength      = 50
	MaxMethodLength      = 50
	MaxDescriptionLength = 500
	MaxAmount            = 1_000_000
	MaxAgeDays           = 3650 // 10 years
	MaxDueDays           = 365
)

// Domain errors
var (
	ErrAlreadyPaid = errs.Transitionf("invoice is already marked as paid")
)

// Invoice is a uniquely-numbered bill owed by one member, optionally tied
// to one session.
type Invoice struct {
	ID                 int64
	Number             string
	PayerID            int64
	SessionID          int64 // 0 = not tied to a session
	InvoiceDate        time.Time
	DueDate            time.Time
	Amount             float64 // rounded to 2 decimal places on write
	PaymentMethod      string
	PaymentStatus      string
	ServiceDescription string
	PaidDate           time.Time // zero until paid
}

// CanTransition reports whether a payment status change is legal.
// The only legal move is Pending -> Paid.
func CanTransition(from, to string) bool {
	return from == StatusPending && to == StatusPaid
}

// Validate checks if the Invoice has valid data.
// POST: Returns nil if valid, InvalidInput error otherwise
func (i *Invoice) Validate() error {
	if _, err := validate.RequiredText("invoice number", i.Number, MaxNumberLength); err != nil {
		return err
	}
	if err := validate.PositiveID("payer ID", i.PayerID); err != nil {
		return err
	}
	if i.SessionID < 0 {
		return errs.Invalidf("session ID must be a positive integer if provided")
	}
	today := time.Now()
	if validate.DateAfter(i.InvoiceDate, today) {
		return errs.Invalidf("invoice date cannot be in the future")
	}
	if validate.DaysBetween(i.InvoiceDate, today) > MaxAgeDays {
		return errs.Invalidf("invoice date is too far in the past")
	}
	if validate.DateBefore(i.DueDate, i.InvoiceDate) {
		return errs.Invalidf("due date cannot be before invoice date")
	}
	if validate.DaysBetween(i.InvoiceDate, i.DueDate) > MaxDueDays {
		return errs.Invalidf("due date cannot be more than 1 year after invoice date")
	}
	if i.Amount <= 0 {
		return errs.Invalidf("invoice amount must be positive")
	}
	if i.Amount > MaxAmount {
		return errs.Invalidf("invoice amount exceeds maximum limit")
	}
	if _, err := validate.OptionalText("payment method", i.PaymentMethod, MaxMethodLength); err != nil {
		return err
	}
	if _, err := validate.RequiredText("service description", i.ServiceDescription, MaxDescriptionLength); err != nil {
		return err
	}
	return validate.OneOf("payment status", i.PaymentStatus, ValidStatuses)
}

// RecordPayment marks the invoice paid.
// PRE: paidDate is within [InvoiceDate, today]
// POST: Status is Paid with method and paid date set, or an error and no change
func (i *Invoice) RecordPayment(method string, paidDate time.Time) error {
	if !CanTransition(i.PaymentStatus, StatusPaid) {
		return ErrAlreadyPaid
	}
	if validate.DateAfter(paidDate, time.Now()) {
		return errs.Invalidf("paid date cannot be in the future")
	}
	if validate.DateBefore(paidDate, i.InvoiceDate) {
		return errs.Invalidf("paid date cannot be before invoice date")
	}
	i.PaymentStatus = StatusPaid
	i.PaymentMethod = method
	i.PaidDate = paidDate
	return nil
}
