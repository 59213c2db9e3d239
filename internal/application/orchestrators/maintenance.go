package orchestrators

import (
	"context"
	"log/slog"
	"time"

	"gymdesk/internal/domain/maintenance"
	"gymdesk/internal/domain/staff"
	"gymdesk/internal/domain/validate"
	"gymdesk/internal/errs"
)

// StaffStoreForLookup defines the read-only admin staff check used by the
// admin orchestrators.
type StaffStoreForLookup interface {
	GetByID(ctx context.Context, id int64) (staff.AdminStaff, error)
}

// IssueStoreForOrchestrator defines the store interface needed by the
// maintenance orchestrators.
type IssueStoreForOrchestrator interface {
	GetByID(ctx context.Context, id int64) (maintenance.MaintenanceIssue, error)
	Create(ctx context.Context, m maintenance.MaintenanceIssue) (int64, error)
	Update(ctx context.Context, m maintenance.MaintenanceIssue) error
}

// LogMaintenanceIssueInput carries input for the log maintenance issue
// orchestrator.
type LogMaintenanceIssueInput struct {
	RoomID        int64
	AdminID       int64
	Description   string
	EquipmentName string
	ReportedDate  time.Time // zero defaults to today
	Priority      string    // empty defaults to Medium
}

// LogMaintenanceIssueDeps holds dependencies for LogMaintenanceIssue.
type LogMaintenanceIssueDeps struct {
	RoomStore  RoomStoreForLookup
	StaffStore StaffStoreForLookup
	IssueStore IssueStoreForOrchestrator
	Now        func() time.Time
}

// ExecuteLogMaintenanceIssue opens a new maintenance issue against a room.
// PRE: room and admin exist
// POST: Issue persisted with status Open
func ExecuteLogMaintenanceIssue(ctx context.Context, input LogMaintenanceIssueInput, deps LogMaintenanceIssueDeps) (maintenance.MaintenanceIssue, error) {
	reported := input.ReportedDate
	if reported.IsZero() {
		reported = deps.Now()
	}
	priority := input.Priority
	if priority == "" {
		priority = maintenance.PriorityMedium
	}

	m := maintenance.MaintenanceIssue{
		RoomID:        input.RoomID,
		AdminID:       input.AdminID,
		Description:   input.Description,
		EquipmentName: input.EquipmentName,
		ReportedDate:  reported,
		Priority:      priority,
		Status:        maintenance.StatusOpen,
	}
	if err := m.Validate(); err != nil {
		return maintenance.MaintenanceIssue{}, err
	}

	if _, err := deps.RoomStore.GetByID(ctx, input.RoomID); err != nil {
		return maintenance.MaintenanceIssue{}, err
	}
	if _, err := deps.StaffStore.GetByID(ctx, input.AdminID); err != nil {
		return maintenance.MaintenanceIssue{}, err
	}

	id, err := deps.IssueStore.Create(ctx, m)
	if err != nil {
		return maintenance.MaintenanceIssue{}, err
	}
	m.ID = id

	slog.Info("maintenance_event", "event", "issue_logged",
		"issue_id", m.ID, "room_id", m.RoomID, "priority", m.Priority)
	return m, nil
}

// UpdateMaintenanceIssueInput carries input for the update maintenance issue
// orchestrator. Nil fields are left unchanged.
type UpdateMaintenanceIssueInput struct {
	IssueID            int64
	Priority           *string
	Status             *string
	AssignedRepairDate *time.Time
	ResolutionDate     *time.Time
	ResolutionNotes    *string
}

// UpdateMaintenanceIssueDeps holds dependencies for UpdateMaintenanceIssue.
type UpdateMaintenanceIssueDeps struct {
	IssueStore IssueStoreForOrchestrator
}

// ExecuteUpdateMaintenanceIssue applies a partial update to an issue,
// enforcing the forward-only status machine and the date ordering rules.
// PRE: at least one field is provided; issue exists
// POST: Issue updated, or an error and no change
func ExecuteUpdateMaintenanceIssue(ctx context.Context, input UpdateMaintenanceIssueInput, deps UpdateMaintenanceIssueDeps) (maintenance.MaintenanceIssue, error) {
	if err := validate.PositiveID("issue ID", input.IssueID); err != nil {
		return maintenance.MaintenanceIssue{}, err
	}
	if err := validate.AtLeastOne("priority, status, assigned repair date, resolution date, resolution notes",
		input.Priority != nil, input.Status != nil, input.AssignedRepairDate != nil,
		input.ResolutionDate != nil, input.ResolutionNotes != nil); err != nil {
		return maintenance.MaintenanceIssue{}, err
	}

	m, err := deps.IssueStore.GetByID(ctx, input.IssueID)
	if err != nil {
		return maintenance.MaintenanceIssue{}, err
	}
	if m.IsClosed() {
		return maintenance.MaintenanceIssue{}, errs.Transitionf("cannot change a closed issue")
	}

	if input.Priority != nil {
		if err := validate.OneOf("priority", *input.Priority, maintenance.ValidPriorities); err != nil {
			return maintenance.MaintenanceIssue{}, err
		}
		m.Priority = *input.Priority
	}
	if input.Status != nil {
		if err := m.ApplyStatus(*input.Status); err != nil {
			return maintenance.MaintenanceIssue{}, err
		}
	}
	if input.AssignedRepairDate != nil {
		if err := m.SetAssignedRepairDate(*input.AssignedRepairDate); err != nil {
			return maintenance.MaintenanceIssue{}, err
		}
	}
	if input.ResolutionDate != nil {
		if err := m.SetResolutionDate(*input.ResolutionDate); err != nil {
			return maintenance.MaintenanceIssue{}, err
		}
	}
	if input.ResolutionNotes != nil {
		notes, err := validate.OptionalText("resolution notes", *input.ResolutionNotes, maintenance.MaxNotesLength)
		if err != nil {
			return maintenance.MaintenanceIssue{}, err
		}
		m.ResolutionNotes = notes
	}

	if err := deps.IssueStore.Update(ctx, m); err != nil {
		return maintenance.MaintenanceIssue{}, err
	}

	slog.Info("maintenance_event", "event", "issue_updated",
		"issue_id", m.ID, "status", m.Status, "priority", m.Priority)
	return m, nil
}
