package configuration

import (
	"context"
	"errors"

	"casecraft/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres error code for invalid_text_representation. Raised when an id
// does not parse as a uuid; such an id matches nothing, so it reads as not
// found.
const invalidTextRepresentation = "22P02"

func badID(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == invalidTextRepresentation
}

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Create(ctx context.Context, in CreateInput) (*domain.Configuration, error) {
	const q = `
INSERT INTO configurations (model, color, material, finish, cropped_image_url)
VALUES ($1, $2, $3, $4, $5)
RETURNING id::text, model, color, material, finish, cropped_image_url, created_at
`
	var c domain.Configuration
	if err := r.pool.QueryRow(ctx, q, in.Model, in.Color, in.Material, in.Finish, in.CroppedImageURL).Scan(
		&c.ID,
		&c.Model,
		&c.Color,
		&c.Material,
		&c.Finish,
		&c.CroppedImageURL,
		&c.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Configuration, error) {
	const q = `
SELECT id::text, model, color, material, finish, cropped_image_url, created_at
FROM configurations
WHERE id = $1
`
	var c domain.Configuration
	if err := r.pool.QueryRow(ctx, q, id).Scan(
		&c.ID,
		&c.Model,
		&c.Color,
		&c.Material,
		&c.Finish,
		&c.CroppedImageURL,
		&c.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) || badID(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}
