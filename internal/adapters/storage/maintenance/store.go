package maintenance

import (
	"context"

	domain "gymdesk/internal/domain/maintenance"
)

// Store persists MaintenanceIssue state.
type Store interface {
	GetByID(ctx context.Context, id int64) (domain.MaintenanceIssue, error)
	Create(ctx context.Context, m domain.MaintenanceIssue) (int64, error)
	Update(ctx context.Context, m domain.MaintenanceIssue) error
	ListOpen(ctx context.Context) ([]domain.MaintenanceIssue, error)
}
