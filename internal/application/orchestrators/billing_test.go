package orchestrators

import (
	"context"
	"errors"
	"testing"

	"gymdesk/internal/domain/invoice"
	"gymdesk/internal/domain/session"
	"gymdesk/internal/errs"
)

func billingDeps(members *mockMemberStore, sessions *mockSessionStore, invoices *mockInvoiceStore) CreateInvoiceDeps {
	return CreateInvoiceDeps{
		MemberStore:  members,
		SessionStore: sessions,
		InvoiceStore: invoices,
		Now:          fixedNow,
	}
}

// TestExecuteCreateInvoice_Valid tests billing with rounding and defaults.
func TestExecuteCreateInvoice_Valid(t *testing.T) {
	members, sessions, invoices := newMockMemberStore(), newMockSessionStore(), newMockInvoiceStore()
	payerID := seedMember(members, "Ava", "Nguyen", "ava@example.com")

	inv, err := ExecuteCreateInvoice(context.Background(), CreateInvoiceInput{
		Number:             "INV-1001",
		PayerID:            payerID,
		DueDate:            fixedToday.AddDate(0, 0, 14),
		Amount:             49.999,
		ServiceDescription: "Monthly membership",
	}, billingDeps(members, sessions, invoices))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inv.Amount != 50.00 {
		t.Errorf("expected amount rounded to 50.00, got %v", inv.Amount)
	}
	if inv.PaymentStatus != invoice.StatusPending {
		t.Errorf("expected status Pending, got %q", inv.PaymentStatus)
	}
	if inv.InvoiceDate != fixedToday {
		t.Errorf("expected invoice date = today, got %v", inv.InvoiceDate)
	}
}

// TestExecuteCreateInvoice_NonPositivePayer tests that a bad payer id is
// rejected as invalid input, not reported as a missing member.
func TestExecuteCreateInvoice_NonPositivePayer(t *testing.T) {
	members, sessions, invoices := newMockMemberStore(), newMockSessionStore(), newMockInvoiceStore()
	_, err := ExecuteCreateInvoice(context.Background(), CreateInvoiceInput{
		Number:             "INV-1003",
		PayerID:            -9,
		DueDate:            fixedToday.AddDate(0, 0, 14),
		Amount:             80,
		ServiceDescription: "PT session",
	}, billingDeps(members, sessions, invoices))
	if !errs.IsKind(err, errs.KindInvalidInput) {
		t.Fatalf("expected InvalidInput, got %v", err)
	}
	if len(invoices.invoices) != 0 {
		t.Error("expected no invoice persisted")
	}
}

// TestExecuteCreateInvoice_SessionOwnership tests that a session billed to
// the wrong member is rejected.
func TestExecuteCreateInvoice_SessionOwnership(t *testing.T) {
	members, sessions, invoices := newMockMemberStore(), newMockSessionStore(), newMockInvoiceStore()
	payerID := seedMember(members, "Ava", "Nguyen", "ava@example.com")
	otherID := seedMember(members, "Marcus", "Reed", "marcus@example.com")
	sessionID, _ := sessions.Create(context.Background(), session.Session{
		TrainerID: 1, MemberID: otherID, Date: fixedToday,
		StartTime: "10:00", EndTime: "11:00", Type: session.TypePersonal,
	})

	_, err := ExecuteCreateInvoice(context.Background(), CreateInvoiceInput{
		Number:             "INV-1002",
		PayerID:            payerID,
		SessionID:          sessionID,
		DueDate:            fixedToday.AddDate(0, 0, 14),
		Amount:             80,
		ServiceDescription: "PT session",
	}, billingDeps(members, sessions, invoices))
	if !errs.IsKind(err, errs.KindInvalidInput) {
		t.Fatalf("expected InvalidInput, got %v", err)
	}
	if len(invoices.invoices) != 0 {
		t.Error("expected no invoice persisted")
	}
}

// TestExecuteCreateInvoice_DuplicateNumber tests invoice number uniqueness.
func TestExecuteCreateInvoice_DuplicateNumber(t *testing.T) {
	members, sessions, invoices := newMockMemberStore(), newMockSessionStore(), newMockInvoiceStore()
	payerID := seedMember(members, "Ava", "Nguyen", "ava@example.com")
	deps := billingDeps(members, sessions, invoices)

	input := CreateInvoiceInput{
		Number:             "INV-1001",
		PayerID:            payerID,
		DueDate:            fixedToday.AddDate(0, 0, 14),
		Amount:             50,
		ServiceDescription: "Monthly membership",
	}
	if _, err := ExecuteCreateInvoice(context.Background(), input, deps); err != nil {
		t.Fatalf("first invoice failed: %v", err)
	}
	if _, err := ExecuteCreateInvoice(context.Background(), input, deps); !errs.IsKind(err, errs.KindInvalidInput) {
		t.Fatalf("expected InvalidInput for duplicate number, got %v", err)
	}
	if len(invoices.invoices) != 1 {
		t.Errorf("expected 1 invoice persisted, have %d", len(invoices.invoices))
	}
}

// TestExecuteCreateInvoice_AmountBounds tests the (0, 1e6] amount range.
func TestExecuteCreateInvoice_AmountBounds(t *testing.T) {
	members, sessions, invoices := newMockMemberStore(), newMockSessionStore(), newMockInvoiceStore()
	payerID := seedMember(members, "Ava", "Nguyen", "ava@example.com")
	deps := billingDeps(members, sessions, invoices)

	for _, amount := range []float64{0, -10, 1_000_000.01} {
		_, err := ExecuteCreateInvoice(context.Background(), CreateInvoiceInput{
			Number:             "INV-2000",
			PayerID:            payerID,
			DueDate:            fixedToday.AddDate(0, 0, 14),
			Amount:             amount,
			ServiceDescription: "Monthly membership",
		}, deps)
		if !errs.IsKind(err, errs.KindInvalidInput) {
			t.Errorf("amount %v: expected InvalidInput, got %v", amount, err)
		}
	}
}

// TestExecuteRecordPayment_Valid tests the one-shot Pending -> Paid move.
func TestExecuteRecordPayment_Valid(t *testing.T) {
	members, sessions, invoices := newMockMemberStore(), newMockSessionStore(), newMockInvoiceStore()
	payerID := seedMember(members, "Ava", "Nguyen", "ava@example.com")
	inv, err := ExecuteCreateInvoice(context.Background(), CreateInvoiceInput{
		Number:             "INV-1001",
		PayerID:            payerID,
		DueDate:            fixedToday.AddDate(0, 0, 14),
		Amount:             50,
		ServiceDescription: "Monthly membership",
	}, billingDeps(members, sessions, invoices))
	if err != nil {
		t.Fatalf("invoice setup failed: %v", err)
	}

	paid, err := ExecuteRecordPayment(context.Background(), RecordPaymentInput{
		InvoiceID: inv.ID,
		Method:    "Card",
	}, RecordPaymentDeps{InvoiceStore: invoices, Now: fixedNow})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if paid.PaymentStatus != invoice.StatusPaid {
		t.Errorf("expected status Paid, got %q", paid.PaymentStatus)
	}
	if paid.PaidDate != fixedToday {
		t.Errorf("expected paid date = today, got %v", paid.PaidDate)
	}
	if invoices.invoices[inv.ID].PaymentStatus != invoice.StatusPaid {
		t.Error("expected payment persisted")
	}
}

// TestExecuteRecordPayment_Twice tests that a second payment is rejected as
// an invalid transition and changes nothing.
func TestExecuteRecordPayment_Twice(t *testing.T) {
	members, sessions, invoices := newMockMemberStore(), newMockSessionStore(), newMockInvoiceStore()
	payerID := seedMember(members, "Ava", "Nguyen", "ava@example.com")
	inv, err := ExecuteCreateInvoice(context.Background(), CreateInvoiceInput{
		Number:             "INV-1001",
		PayerID:            payerID,
		DueDate:            fixedToday.AddDate(0, 0, 14),
		Amount:             50,
		ServiceDescription: "Monthly membership",
	}, billingDeps(members, sessions, invoices))
	if err != nil {
		t.Fatalf("invoice setup failed: %v", err)
	}
	deps := RecordPaymentDeps{InvoiceStore: invoices, Now: fixedNow}
	if _, err := ExecuteRecordPayment(context.Background(), RecordPaymentInput{InvoiceID: inv.ID, Method: "Card"}, deps); err != nil {
		t.Fatalf("first payment failed: %v", err)
	}

	_, err = ExecuteRecordPayment(context.Background(), RecordPaymentInput{InvoiceID: inv.ID, Method: "Cash"}, deps)
	if !errs.IsKind(err, errs.KindInvalidTransition) {
		t.Fatalf("expected InvalidTransition, got %v", err)
	}
	if !errors.Is(err, invoice.ErrAlreadyPaid) {
		t.Errorf("expected ErrAlreadyPaid sentinel, got %v", err)
	}
	if invoices.invoices[inv.ID].PaymentMethod != "Card" {
		t.Error("expected first payment method preserved")
	}
}

// TestExecuteRecordPayment_MissingMethod tests that the method is required.
func TestExecuteRecordPayment_MissingMethod(t *testing.T) {
	invoices := newMockInvoiceStore()
	_, err := ExecuteRecordPayment(context.Background(), RecordPaymentInput{InvoiceID: 1},
		RecordPaymentDeps{InvoiceStore: invoices, Now: fixedNow})
	if !errs.IsKind(err, errs.KindInvalidInput) {
		t.Fatalf("expected InvalidInput, got %v", err)
	}
}
