package orchestrators

import (
	"context"
	"time"

	"gymdesk/internal/domain/goal"
	"gymdesk/internal/domain/invoice"
	"gymdesk/internal/domain/maintenance"
	"gymdesk/internal/domain/member"
	"gymdesk/internal/domain/metric"
	"gymdesk/internal/domain/room"
	"gymdesk/internal/domain/session"
	"gymdesk/internal/domain/staff"
	"gymdesk/internal/domain/trainer"
	"gymdesk/internal/domain/validate"
	"gymdesk/internal/errs"
)

var fixedToday = time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return fixedToday }

func fixedRef() string { return "ref-001" }

func floatPtr(v float64) *float64 { return &v }

func intPtr(v int) *int { return &v }

// mockMemberStore implements the member store interfaces used by the
// orchestrators.
type mockMemberStore struct {
	members map[int64]member.Member
	nextID  int64
}

func newMockMemberStore() *mockMemberStore {
	return &mockMemberStore{members: make(map[int64]member.Member), nextID: 1}
}

func (m *mockMemberStore) GetByID(_ context.Context, id int64) (member.Member, error) {
	e, ok := m.members[id]
	if !ok {
		return member.Member{}, errs.NotFoundf("member with ID %d not found", id)
	}
	return e, nil
}

func (m *mockMemberStore) GetByEmail(_ context.Context, email string) (member.Member, error) {
	for _, e := range m.members {
		if e.Email == email {
			return e, nil
		}
	}
	return member.Member{}, errs.NotFoundf("member with email %q not found", email)
}

func (m *mockMemberStore) Create(_ context.Context, e member.Member) (int64, error) {
	e.ID = m.nextID
	m.nextID++
	m.members[e.ID] = e
	return e.ID, nil
}

func (m *mockMemberStore) Update(_ context.Context, e member.Member) error {
	m.members[e.ID] = e
	return nil
}

func (m *mockMemberStore) Count(_ context.Context) (int, error) {
	return len(m.members), nil
}

// mockTrainerStore implements the trainer lookup interface.
type mockTrainerStore struct {
	trainers map[int64]trainer.Trainer
	nextID   int64
}

func newMockTrainerStore() *mockTrainerStore {
	return &mockTrainerStore{trainers: make(map[int64]trainer.Trainer), nextID: 1}
}

func (m *mockTrainerStore) GetByID(_ context.Context, id int64) (trainer.Trainer, error) {
	e, ok := m.trainers[id]
	if !ok {
		return trainer.Trainer{}, errs.NotFoundf("trainer with ID %d not found", id)
	}
	return e, nil
}

func (m *mockTrainerStore) Create(_ context.Context, e trainer.Trainer) (int64, error) {
	e.ID = m.nextID
	m.nextID++
	m.trainers[e.ID] = e
	return e.ID, nil
}

// mockRoomStore implements the room lookup interface.
type mockRoomStore struct {
	rooms  map[int64]room.Room
	nextID int64
}

func newMockRoomStore() *mockRoomStore {
	return &mockRoomStore{rooms: make(map[int64]room.Room), nextID: 1}
}

func (m *mockRoomStore) GetByID(_ context.Context, id int64) (room.Room, error) {
	e, ok := m.rooms[id]
	if !ok {
		return room.Room{}, errs.NotFoundf("room with ID %d not found", id)
	}
	return e, nil
}

func (m *mockRoomStore) Create(_ context.Context, e room.Room) (int64, error) {
	e.ID = m.nextID
	m.nextID++
	m.rooms[e.ID] = e
	return e.ID, nil
}

// mockStaffStore implements the admin staff lookup interface.
type mockStaffStore struct {
	staff  map[int64]staff.AdminStaff
	nextID int64
}

func newMockStaffStore() *mockStaffStore {
	return &mockStaffStore{staff: make(map[int64]staff.AdminStaff), nextID: 1}
}

func (m *mockStaffStore) GetByID(_ context.Context, id int64) (staff.AdminStaff, error) {
	e, ok := m.staff[id]
	if !ok {
		return staff.AdminStaff{}, errs.NotFoundf("admin staff with ID %d not found", id)
	}
	return e, nil
}

func (m *mockStaffStore) Create(_ context.Context, e staff.AdminStaff) (int64, error) {
	e.ID = m.nextID
	m.nextID++
	m.staff[e.ID] = e
	return e.ID, nil
}

// mockSessionStore implements the session store interfaces used by the
// scheduling orchestrators.
type mockSessionStore struct {
	sessions map[int64]session.Session
	nextID   int64
}

func newMockSessionStore() *mockSessionStore {
	return &mockSessionStore{sessions: make(map[int64]session.Session), nextID: 1}
}

func (m *mockSessionStore) GetByID(_ context.Context, id int64) (session.Session, error) {
	e, ok := m.sessions[id]
	if !ok {
		return session.Session{}, errs.NotFoundf("session with ID %d not found", id)
	}
	return e, nil
}

func (m *mockSessionStore) Create(_ context.Context, e session.Session) (int64, error) {
	e.ID = m.nextID
	m.nextID++
	m.sessions[e.ID] = e
	return e.ID, nil
}

func (m *mockSessionStore) UpdateRoom(_ context.Context, sessionID, roomID int64) error {
	e, ok := m.sessions[sessionID]
	if !ok {
		return errs.NotFoundf("session with ID %d not found", sessionID)
	}
	e.RoomID = roomID
	m.sessions[sessionID] = e
	return nil
}

func (m *mockSessionStore) onDate(date time.Time, keep func(session.Session) bool) []session.Session {
	var out []session.Session
	for _, e := range m.sessions {
		if validate.FormatDate(e.Date) == validate.FormatDate(date) && keep(e) {
			out = append(out, e)
		}
	}
	return out
}

func (m *mockSessionStore) ListForTrainerOnDate(_ context.Context, trainerID int64, date time.Time) ([]session.Session, error) {
	return m.onDate(date, func(s session.Session) bool { return s.TrainerID == trainerID }), nil
}

func (m *mockSessionStore) ListForRoomOnDate(_ context.Context, roomID int64, date time.Time) ([]session.Session, error) {
	return m.onDate(date, func(s session.Session) bool { return s.RoomID == roomID }), nil
}

func (m *mockSessionStore) ListForMemberOnDate(_ context.Context, memberID int64, date time.Time) ([]session.Session, error) {
	return m.onDate(date, func(s session.Session) bool { return s.MemberID == memberID }), nil
}

// mockGoalStore implements the goal store interface.
type mockGoalStore struct {
	goals  map[int64]goal.FitnessGoal
	nextID int64
}

func newMockGoalStore() *mockGoalStore {
	return &mockGoalStore{goals: make(map[int64]goal.FitnessGoal), nextID: 1}
}

func (m *mockGoalStore) Create(_ context.Context, e goal.FitnessGoal) (int64, error) {
	e.ID = m.nextID
	m.nextID++
	m.goals[e.ID] = e
	return e.ID, nil
}

// mockMetricStore implements the metric store interface.
type mockMetricStore struct {
	metrics map[int64]metric.HealthMetric
	nextID  int64
}

func newMockMetricStore() *mockMetricStore {
	return &mockMetricStore{metrics: make(map[int64]metric.HealthMetric), nextID: 1}
}

func (m *mockMetricStore) Create(_ context.Context, e metric.HealthMetric) (int64, error) {
	e.ID = m.nextID
	m.nextID++
	m.metrics[e.ID] = e
	return e.ID, nil
}

// mockIssueStore implements the maintenance issue store interface.
type mockIssueStore struct {
	issues map[int64]maintenance.MaintenanceIssue
	nextID int64
}

func newMockIssueStore() *mockIssueStore {
	return &mockIssueStore{issues: make(map[int64]maintenance.MaintenanceIssue), nextID: 1}
}

func (m *mockIssueStore) GetByID(_ context.Context, id int64) (maintenance.MaintenanceIssue, error) {
	e, ok := m.issues[id]
	if !ok {
		return maintenance.MaintenanceIssue{}, errs.NotFoundf("maintenance issue with ID %d not found", id)
	}
	return e, nil
}

func (m *mockIssueStore) Create(_ context.Context, e maintenance.MaintenanceIssue) (int64, error) {
	e.ID = m.nextID
	m.nextID++
	m.issues[e.ID] = e
	return e.ID, nil
}

func (m *mockIssueStore) Update(_ context.Context, e maintenance.MaintenanceIssue) error {
	if _, ok := m.issues[e.ID]; !ok {
		return errs.NotFoundf("maintenance issue with ID %d not found", e.ID)
	}
	m.issues[e.ID] = e
	return nil
}

// mockInvoiceStore implements the invoice store interface.
type mockInvoiceStore struct {
	invoices map[int64]invoice.Invoice
	nextID   int64
}

func newMockInvoiceStore() *mockInvoiceStore {
	return &mockInvoiceStore{invoices: make(map[int64]invoice.Invoice), nextID: 1}
}

func (m *mockInvoiceStore) GetByID(_ context.Context, id int64) (invoice.Invoice, error) {
	e, ok := m.invoices[id]
	if !ok {
		return invoice.Invoice{}, errs.NotFoundf("invoice with ID %d not found", id)
	}
	return e, nil
}

func (m *mockInvoiceStore) GetByNumber(_ context.Context, number string) (invoice.Invoice, error) {
	for _, e := range m.invoices {
		if e.Number == number {
			return e, nil
		}
	}
	return invoice.Invoice{}, errs.NotFoundf("invoice %q not found", number)
}

func (m *mockInvoiceStore) Create(_ context.Context, e invoice.Invoice) (int64, error) {
	e.ID = m.nextID
	m.nextID++
	m.invoices[e.ID] = e
	return e.ID, nil
}

func (m *mockInvoiceStore) UpdatePayment(_ context.Context, e invoice.Invoice) error {
	if _, ok := m.invoices[e.ID]; !ok {
		return errs.NotFoundf("invoice with ID %d not found", e.ID)
	}
	m.invoices[e.ID] = e
	return nil
}

// seedMember adds an active member and returns its id.
func seedMember(store *mockMemberStore, first, last, email string) int64 {
	id, _ := store.Create(context.Background(), member.Member{
		FirstName: first, LastName: last, Email: email,
		JoinDate: fixedToday, MembershipStatus: member.StatusActive,
	})
	return id
}

// adminFixture builds an admin staff fixture.
func adminFixture() staff.AdminStaff {
	return staff.AdminStaff{
		FirstName: "Dana", LastName: "Whitfield",
		Email: "dana@example.com", Role: "Front Desk",
	}
}

// roomWithCapacity builds a room fixture.
func roomWithCapacity(number string, capacity int) room.Room {
	return room.Room{Number: number, Capacity: capacity, Type: "Studio"}
}

// seedTrainer adds a trainer and returns its id.
func seedTrainer(store *mockTrainerStore, first, last, email string) int64 {
	id, _ := store.Create(context.Background(), trainer.Trainer{
		FirstName: first, LastName: last, Email: email,
	})
	return id
}
