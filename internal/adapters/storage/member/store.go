package member

import (
	"context"

	domain "gymdesk/internal/domain/member"
)

// Store persists Member state.
type Store interface {
	GetByID(ctx context.Context, id int64) (domain.Member, error)
	GetByEmail(ctx context.Context, email string) (domain.Member, error)
	Create(ctx context.Context, m domain.Member) (int64, error)
	Update(ctx context.Context, m domain.Member) error
	Count(ctx context.Context) (int, error)
	Search(ctx context.Context, filter SearchFilter) ([]domain.Member, error)
}

// SearchFilter carries a sanitized name search. For a multi-token query,
// First and Last hold the first and last tokens; for a single token both
// are empty and only Term is matched.
type SearchFilter struct {
	Term  string // full search term, matched against either name and the concatenation
	First string
	Last  string
	Limit int
}
