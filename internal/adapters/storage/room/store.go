package room

import (
	"context"

	domain "gymdesk/internal/domain/room"
)

// Store persists Room state.
type Store interface {
	GetByID(ctx context.Context, id int64) (domain.Room, error)
	Create(ctx context.Context, r domain.Room) (int64, error)
	List(ctx context.Context) ([]domain.Room, error)
}
