package staff

import (
	"context"

	domain "gymdesk/internal/domain/staff"
)

// Store persists AdminStaff state.
type Store interface {
	GetByID(ctx context.Context, id int64) (domain.AdminStaff, error)
	Create(ctx context.Context, a domain.AdminStaff) (int64, error)
	List(ctx context.Context) ([]domain.AdminStaff, error)
}
