package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type configurationSeed struct {
	Model    string
	Color    string
	Material string
	Finish   string
}

// Apply inserts basic seed data for manual testing. It is idempotent: each
// configuration is keyed by its option tuple and an existing row is reused.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	configurations := []configurationSeed{
		{Model: "iphone14", Color: "black", Material: "silicone", Finish: "smooth"},
		{Model: "iphone15", Color: "blue", Material: "polycarbonate", Finish: "textured"},
		{Model: "iphone13", Color: "rose", Material: "silicone", Finish: "textured"},
	}

	for _, cfg := range configurations {
		if err := ensureConfiguration(ctx, pool, cfg); err != nil {
			return fmt.Errorf("ensure configuration %s/%s/%s: %w", cfg.Model, cfg.Material, cfg.Finish, err)
		}
	}

	if err := ensureAddress(ctx, pool); err != nil {
		return fmt.Errorf("ensure address: %w", err)
	}

	return nil
}

func ensureConfiguration(ctx context.Context, pool *pgxpool.Pool, cfg configurationSeed) error {
	const existsQ = `
SELECT id::text
FROM configurations
WHERE model = $1 AND color = $2 AND material = $3 AND finish = $4
LIMIT 1
`
	var id string
	err := pool.QueryRow(ctx, existsQ, cfg.Model, cfg.Color, cfg.Material, cfg.Finish).Scan(&id)
	if err == nil {
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	const insertQ = `
INSERT INTO configurations (model, color, material, finish)
VALUES ($1, $2, $3, $4)
`
	if _, err := pool.Exec(ctx, insertQ, cfg.Model, cfg.Color, cfg.Material, cfg.Finish); err != nil {
		return err
	}
	return nil
}

func ensureAddress(ctx context.Context, pool *pgxpool.Pool) error {
	const existsQ = `
SELECT id::text
FROM shipping_addresses
WHERE user_id = 'seed-user'
LIMIT 1
`
	var id string
	err := pool.QueryRow(ctx, existsQ).Scan(&id)
	if err == nil {
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	const insertQ = `
INSERT INTO shipping_addresses (user_id, name, street, city, postal_code, country)
VALUES ('seed-user', 'Seed Buyer', '1 Demo Street', 'Pune', '411001', 'IN')
`
	if _, err := pool.Exec(ctx, insertQ); err != nil {
		return err
	}
	return nil
}
