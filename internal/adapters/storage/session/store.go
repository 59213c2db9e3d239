package session

import (
	"context"
	"time"

	domain "gymdesk/internal/domain/session"
)

// Store persists Session state.
type Store interface {
	GetByID(ctx context.Context, id int64) (domain.Session, error)
	Create(ctx context.Context, s domain.Session) (int64, error)
	UpdateRoom(ctx context.Context, sessionID, roomID int64) error
	ListForTrainerOnDate(ctx context.Context, trainerID int64, date time.Time) ([]domain.Session, error)
	ListForRoomOnDate(ctx context.Context, roomID int64, date time.Time) ([]domain.Session, error)
	ListForMemberOnDate(ctx context.Context, memberID int64, date time.Time) ([]domain.Session, error)
	ListForTrainerFrom(ctx context.Context, trainerID int64, from time.Time) ([]domain.Session, error)
}
