package trainer

import (
	"context"

	domain "gymdesk/internal/domain/trainer"
)

// Store persists Trainer state.
type Store interface {
	GetByID(ctx context.Context, id int64) (domain.Trainer, error)
	Create(ctx context.Context, t domain.Trainer) (int64, error)
	List(ctx context.Context) ([]domain.Trainer, error)
}
