package address

import (
	"context"
	"errors"

	"casecraft/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const addressColumns = `id::text, user_id, name, street, city, postal_code, country, state, phone_number, created_at`

// Postgres error code for invalid_text_representation. Raised when a path id
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

func (r *postgresRepo) ListByUser(ctx context.Context, userID string) ([]domain.Address, error) {
	const q = `
SELECT ` + addressColumns + `
FROM shipping_addresses
WHERE user_id = $1
ORDER BY created_at ASC
`
	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Address
	for rows.Next() {
		var a domain.Address
		if err := scanAddress(rows, &a); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *postgresRepo) Create(ctx context.Context, in CreateInput) (*domain.Address, error) {
	return r.insert(ctx, "shipping_addresses", in)
}

func (r *postgresRepo) CreateBilling(ctx context.Context, in CreateInput) (*domain.Address, error) {
	return r.insert(ctx, "billing_addresses", in)
}

func (r *postgresRepo) insert(ctx context.Context, table string, in CreateInput) (*domain.Address, error) {
	q := `
INSERT INTO ` + table + ` (user_id, name, street, city, postal_code, country, state, phone_number)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + addressColumns

	var a domain.Address
	if err := scanAddress(r.pool.QueryRow(ctx, q,
		in.UserID, in.Name, in.Street, in.City, in.PostalCode, in.Country, in.State, in.PhoneNumber,
	), &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Address, error) {
	const q = `
SELECT ` + addressColumns + `
FROM shipping_addresses
WHERE id = $1
`
	var a domain.Address
	if err := scanAddress(r.pool.QueryRow(ctx, q, id), &a); err != nil {
		if errors.Is(err, pgx.ErrNoRows) || badID(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *postgresRepo) Update(ctx context.Context, id string, in UpdateInput) (*domain.Address, error) {
	const q = `
UPDATE shipping_addresses
SET name = COALESCE($2, name),
    street = COALESCE($3, street),
    city = COALESCE($4, city),
    postal_code = COALESCE($5, postal_code),
    country = COALESCE($6, country),
    state = COALESCE($7, state),
    phone_number = COALESCE($8, phone_number)
WHERE id = $1
RETURNING ` + addressColumns

	var a domain.Address
	if err := scanAddress(r.pool.QueryRow(ctx, q,
		id, in.Name, in.Street, in.City, in.PostalCode, in.Country, in.State, in.PhoneNumber,
	), &a); err != nil {
		if errors.Is(err, pgx.ErrNoRows) || badID(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) (*domain.Address, error) {
	const q = `
DELETE FROM shipping_addresses
WHERE id = $1
RETURNING ` + addressColumns

	var a domain.Address
	if err := scanAddress(r.pool.QueryRow(ctx, q, id), &a); err != nil {
		if errors.Is(err, pgx.ErrNoRows) || badID(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func scanAddress(row pgx.Row, a *domain.Address) error {
	return row.Scan(
		&a.ID,
		&a.UserID,
		&a.Name,
		&a.Street,
		&a.City,
		&a.PostalCode,
		&a.Country,
		&a.State,
		&a.PhoneNumber,
		&a.CreatedAt,
	)
}
