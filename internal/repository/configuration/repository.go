package configuration

import (
	"context"

	"casecraft/internal/domain"
)

type CreateInput struct {
	Model           string
	Color           string
	Material        string
	Finish          string
	CroppedImageURL *string
}

type Repository interface {
	Create(ctx context.Context, in CreateInput) (*domain.Configuration, error)
	GetByID(ctx context.Context, id string) (*domain.Configuration, error)
}
