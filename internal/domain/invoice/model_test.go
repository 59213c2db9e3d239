package invoice_test

import (
	"errors"
	"testing"
	"time"

	"gymdesk/internal/domain/invoice"
	"gymdesk/internal/errs"
)

// TestCanTransition verifies payment is a one-shot transition.
func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{invoice.StatusPending, invoice.StatusPaid, true},
		{invoice.StatusPending, invoice.StatusPending, false},
		{invoice.StatusPaid, invoice.StatusPaid, false},
		{invoice.StatusPaid, invoice.StatusPending, false},
	}
	for _, tt := range tests {
		if got := invoice.CanTransition(tt.from, tt.to); got != tt.want {
			t.Errorf("CanTransition(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

// TestRecordPayment tests the Pending -> Paid transition and date rules.
func TestRecordPayment(t *testing.T) {
	newInvoice := func() invoice.Invoice {
		return invoice.Invoice{
			Number:        "INV-001",
			PayerID:       1,
			InvoiceDate:   time.Now().AddDate(0, 0, -7),
			DueDate:       time.Now().AddDate(0, 0, 7),
			Amount:        120,
			PaymentStatus: invoice.StatusPending,
		}
	}

	t.Run("first payment succeeds", func(t *testing.T) {
		inv := newInvoice()
		if err := inv.RecordPayment("Credit Card", time.Now()); err != nil {
			t.Fatalf("RecordPayment() error = %v", err)
		}
		if inv.PaymentStatus != invoice.StatusPaid {
			t.Errorf("status = %q, want Paid", inv.PaymentStatus)
		}
		if inv.PaymentMethod != "Credit Card" {
			t.Errorf("method = %q, want Credit Card", inv.PaymentMethod)
		}
		if inv.PaidDate.IsZero() {
			t.Error("paid date not set")
		}
	})

	t.Run("second payment rejected", func(t *testing.T) {
		inv := newInvoice()
		if err := inv.RecordPayment("Cash", time.Now()); err != nil {
			t.Fatalf("first RecordPayment() error = %v", err)
		}
		err := inv.RecordPayment("Cash", time.Now())
		if !errors.Is(err, invoice.ErrAlreadyPaid) {
			t.Errorf("second RecordPayment() = %v, want ErrAlreadyPaid", err)
		}
		if !errs.IsKind(err, errs.KindInvalidTransition) {
			t.Errorf("kind = %v, want KindInvalidTransition", errs.KindOf(err))
		}
	})

	t.Run("paid date before invoice date", func(t *testing.T) {
		inv := newInvoice()
		err := inv.RecordPayment("Cash", inv.InvoiceDate.AddDate(0, 0, -1))
		if !errs.IsKind(err, errs.KindInvalidInput) {
			t.Errorf("kind = %v, want KindInvalidInput", errs.KindOf(err))
		}
		if inv.PaymentStatus != invoice.StatusPending {
			t.Error("failed payment mutated the invoice")
		}
	})

	t.Run("paid date in the future", func(t *testing.T) {
		inv := newInvoice()
		if err := inv.RecordPayment("Cash", time.Now().AddDate(0, 0, 2)); err == nil {
			t.Error("RecordPayment(future date) = nil, want error")
		}
	})
}

// TestInvoiceValidate tests invoice field and date-ordering rules.
func TestInvoiceValidate(t *testing.T) {
	valid := invoice.Invoice{
		Number:             "INV-2026-0042",
		PayerID:            3,
		InvoiceDate:        time.Now().AddDate(0, 0, -1),
		DueDate:            time.Now().AddDate(0, 0, 13),
		Amount:             89.99,
		PaymentStatus:      invoice.StatusPending,
		ServiceDescription: "Personal training session",
	}

	tests := []struct {
		name    string
		mutate  func(i *invoice.Invoice)
		wantErr bool
	}{
		{"valid", func(i *invoice.Invoice) {}, false},
		{"empty number", func(i *invoice.Invoice) { i.Number = "" }, true},
		{"zero payer", func(i *invoice.Invoice) { i.PayerID = 0 }, true},
		{"future invoice date", func(i *invoice.Invoice) { i.InvoiceDate = time.Now().AddDate(0, 0, 3) }, true},
		{"due before invoice", func(i *invoice.Invoice) { i.DueDate = i.InvoiceDate.AddDate(0, 0, -2) }, true},
		{"due too far out", func(i *invoice.Invoice) { i.DueDate = i.InvoiceDate.AddDate(0, 0, 400) }, true},
		{"zero amount", func(i *invoice.Invoice) { i.Amount = 0 }, true},
		{"amount over limit", func(i *invoice.Invoice) { i.Amount = 1_000_001 }, true},
		{"empty description", func(i *invoice.Invoice) { i.ServiceDescription = "  " }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := valid
			tt.mutate(&inv)
			err := inv.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
