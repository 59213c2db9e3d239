package maintenance

import (
	"time"

	"gymdesk/internal/domain/validate"
	"gymdesk/internal/errs"
)

// Issue status constants. The status machine is forward-only: a status may
// move to any later-or-equal status, except that Resolved may only advance
// to Closed and Closed accepts no further change.
const (
	StatusOpen       = "Open"
	StatusInProgress = "In Progress"
	StatusResolved   = "Resolved"
	StatusClosed     = "Closed"
)

// ValidStatuses contains all valid issue status values in forward order.
var ValidStatuses = []string{StatusOpen, StatusInProgress, StatusResolved, StatusClosed}

// Priority constants
const (
	PriorityLow      = "Low"
	PriorityMedium   = "Medium"
	PriorityHigh     = "High"
	PriorityCritical = "Critical"
)

// ValidPriorities contains all valid priority values.
var ValidPriorities = []string{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}

// Limits for issue fields.
const (
	MaxDescriptionLength = 1000
	MaxEquipmentLength   = 100
	MaxNotesLength       = 1000
	MaxReportAgeDays     = 3650 // 10 years
	MaxRepairLeadDays    = 365
)

// statusRank orders statuses for the forward-only rule.
var statusRank = map[string]int{
	StatusOpen:       0,
	StatusInProgress: 1,
	StatusResolved:   2,
	StatusClosed:     3,
}

// CanTransition reports whether an issue status change is legal. Staying on
// the same status counts as legal except from Closed, which is terminal.
func CanTransition(from, to string) bool {
	fromRank, ok := statusRank[from]
	if !ok {
		return false
	}
	toRank, ok := statusRank[to]
	if !ok {
		return false
	}
	if from == StatusClosed {
		return false
	}
	if from == StatusResolved {
		return to == StatusResolved || to == StatusClosed
	}
	return toRank >= fromRank
}

// MaintenanceIssue is a reported problem tied to one room and the admin
// staff member who logged it.
type MaintenanceIssue struct {
	ID                 int64
	RoomID             int64
	AdminID            int64
	Description        string
	EquipmentName      string // optional specific equipment
	ReportedDate       time.Time
	Priority           string
	Status             string
	AssignedRepairDate time.Time // zero until assigned
	ResolutionDate     time.Time // zero until resolved
	ResolutionNotes    string
}

// IsClosed returns true once the issue is in its terminal status.
func (m *MaintenanceIssue) IsClosed() bool {
	return m.Status == StatusClosed
}

// Validate checks if the MaintenanceIssue has valid data.
// POST: Returns nil if valid, InvalidInput error otherwise
func (m *MaintenanceIssue) Validate() error {
	if err := validate.PositiveID("room ID", m.RoomID); err != nil {
		return err
	}
	if err := validate.PositiveID("admin ID", m.AdminID); err != nil {
		return err
	}
	if _, err := validate.RequiredText("issue description", m.Description, MaxDescriptionLength); err != nil {
		return err
	}
	if _, err := validate.OptionalText("equipment name", m.EquipmentName, MaxEquipmentLength); err != nil {
		return err
	}
	today := time.Now()
	if validate.DateAfter(m.ReportedDate, today) {
		return errs.Invalidf("reported date cannot be in the future")
	}
	if validate.DaysBetween(m.ReportedDate, today) > MaxReportAgeDays {
		return errs.Invalidf("reported date is too far in the past")
	}
	if err := validate.OneOf("priority", m.Priority, ValidPriorities); err != nil {
		return err
	}
	return validate.OneOf("issue status", m.Status, ValidStatuses)
}

// ApplyStatus moves the issue to a new status, enforcing the forward-only
// machine.
// POST: Status updated, or InvalidTransition error and no change
func (m *MaintenanceIssue) ApplyStatus(to string) error {
	if err := validate.OneOf("status", to, ValidStatuses); err != nil {
		return err
	}
	if m.Status == StatusClosed {
		return errs.Transitionf("cannot change status of a closed issue")
	}
	if !CanTransition(m.Status, to) {
		if m.Status == StatusResolved {
			return errs.Transitionf("resolved issues can only be closed")
		}
		return errs.Transitionf("cannot move issue from %q back to %q", m.Status, to)
	}
	m.Status = to
	return nil
}

// SetAssignedRepairDate validates and records the planned repair date.
// PRE: date >= reported date, no more than 1 year ahead of today
func (m *MaintenanceIssue) SetAssignedRepairDate(date time.Time) error {
	if validate.DateBefore(date, m.ReportedDate) {
		return errs.Invalidf("assigned repair date cannot be before reported date")
	}
	if validate.DaysBetween(time.Now(), date) > MaxRepairLeadDays {
		return errs.Invalidf("assigned repair date cannot be more than 1 year in the future")
	}
	m.AssignedRepairDate = date
	return nil
}

// SetResolutionDate validates and records when the issue was resolved.
// PRE: status is Resolved or Closed; date within [reported date, today] and
// not before any assigned repair date
func (m *MaintenanceIssue) SetResolutionDate(date time.Time) error {
	if m.Status != StatusResolved && m.Status != StatusClosed {
		return errs.Invalidf("cannot set resolution date unless status is %q or %q", StatusResolved, StatusClosed)
	}
	if validate.DateBefore(date, m.ReportedDate) {
		return errs.Invalidf("resolution date cannot be before reported date")
	}
	if validate.DateAfter(date, time.Now()) {
		return errs.Invalidf("resolution date cannot be in the future")
	}
	if !m.AssignedRepairDate.IsZero() && validate.DateBefore(date, m.AssignedRepairDate) {
		return errs.Invalidf("resolution date cannot be before assigned repair date")
	}
	m.ResolutionDate = date
	return nil
}
