package invoice

import (
	"context"

	domain "gymdesk/internal/domain/invoice"
)

// Store persists Invoice state.
type Store interface {
	GetByID(ctx context.Context, id int64) (domain.Invoice, error)
	GetByNumber(ctx context.Context, number string) (domain.Invoice, error)
	Create(ctx context.Context, i domain.Invoice) (int64, error)
	UpdatePayment(ctx context.Context, i domain.Invoice) error
}
