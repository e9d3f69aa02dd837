package address

import (
	"context"

	"casecraft/internal/domain"
)

type CreateInput struct {
	UserID      string
	Name        string
	Street      string
	City        string
	PostalCode  string
	Country     string
	State       *string
	PhoneNumber *string
}

// UpdateInput carries partial field updates; nil fields are left unchanged.
type UpdateInput struct {
	Name        *string
	Street      *string
	City        *string
	PostalCode  *string
	Country     *string
	State       *string
	PhoneNumber *string
}

type Repository interface {
	ListByUser(ctx context.Context, userID string) ([]domain.Address, error)
	Create(ctx context.Context, in CreateInput) (*domain.Address, error)
	// CreateBilling mirrors a shipping address into the billing table.
	CreateBilling(ctx context.Context, in CreateInput) (*domain.Address, error)
	GetByID(ctx context.Context, id string) (*domain.Address, error)
	Update(ctx context.Context, id string, in UpdateInput) (*domain.Address, error)
	Delete(ctx context.Context, id string) (*domain.Address, error)
}
