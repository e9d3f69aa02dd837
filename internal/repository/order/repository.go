package order

import (
	"context"

	"casecraft/internal/domain"
)

type CreateInput struct {
	UserID            string
	ConfigurationID   string
	AmountCents       int64
	ShippingAddressID *string
}

type Repository interface {
	// Create inserts a new unpaid order. Returns domain.ErrConflict when an
	// unpaid order for the same (user, configuration) pair already exists,
	// enforced by a partial unique index.
	Create(ctx context.Context, in CreateInput) (*domain.Order, error)
	// FindPending returns the unpaid order for the pair, or domain.ErrNotFound.
	FindPending(ctx context.Context, userID, configurationID string) (*domain.Order, error)
	// MarkPaid sets is_paid and returns the row. Safe to call repeatedly; a
	// second call on a paid order is a no-op success.
	MarkPaid(ctx context.Context, orderID string) (*domain.Order, error)
	GetByID(ctx context.Context, orderID string) (*domain.Order, error)
}
