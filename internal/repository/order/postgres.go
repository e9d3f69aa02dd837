package order

import (
	"context"
	"errors"
	"log"

	"casecraft/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const orderColumns = `id::text, user_id, configuration_id::text, shipping_address_id::text, amount_cents, is_paid, created_at`

// Postgres error codes: unique_violation and invalid_text_representation.
// The latter is raised when an id does not parse as a uuid; such an id
// matches nothing, so it reads as not found.
const (
	uniqueViolation           = "23505"
	invalidTextRepresentation = "22P02"
)

func badID(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == invalidTextRepresentation
}

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) Create(ctx context.Context, in CreateInput) (*domain.Order, error) {
	const q = `
INSERT INTO orders (user_id, configuration_id, shipping_address_id, amount_cents)
VALUES ($1, $2, $3, $4)
RETURNING ` + orderColumns

	var o domain.Order
	if err := scanOrder(r.pool.QueryRow(ctx, q,
		in.UserID, in.ConfigurationID, in.ShippingAddressID, in.AmountCents,
	), &o); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			r.logger.Printf("pending order already exists for user=%s config=%s", in.UserID, in.ConfigurationID)
			return nil, domain.ErrConflict
		}
		return nil, err
	}
	return &o, nil
}

func (r *postgresRepo) FindPending(ctx context.Context, userID, configurationID string) (*domain.Order, error) {
	const q = `
SELECT ` + orderColumns + `
FROM orders
WHERE user_id = $1 AND configuration_id = $2 AND NOT is_paid
ORDER BY created_at DESC
LIMIT 1
`
	var o domain.Order
	if err := scanOrder(r.pool.QueryRow(ctx, q, userID, configurationID), &o); err != nil {
		if errors.Is(err, pgx.ErrNoRows) || badID(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *postgresRepo) MarkPaid(ctx context.Context, orderID string) (*domain.Order, error) {
	const q = `
UPDATE orders
SET is_paid = TRUE
WHERE id = $1
RETURNING ` + orderColumns

	var o domain.Order
	if err := scanOrder(r.pool.QueryRow(ctx, q, orderID), &o); err != nil {
		if errors.Is(err, pgx.ErrNoRows) || badID(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, orderID string) (*domain.Order, error) {
	const q = `
SELECT ` + orderColumns + `
FROM orders
WHERE id = $1
`
	var o domain.Order
	if err := scanOrder(r.pool.QueryRow(ctx, q, orderID), &o); err != nil {
		if errors.Is(err, pgx.ErrNoRows) || badID(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func scanOrder(row pgx.Row, o *domain.Order) error {
	return row.Scan(
		&o.ID,
		&o.UserID,
		&o.ConfigurationID,
		&o.ShippingAddressID,
		&o.AmountCents,
		&o.IsPaid,
		&o.CreatedAt,
	)
}
