// Package db builds the Postgres pool shared by the API, the migrator and
// the seeder.
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	maxConns     = 10
	connIdleTime = 3 * time.Minute
	connLifetime = time.Hour
	pingTimeout  = 5 * time.Second
)

// Connect parses the DSN, opens a pool and pings it, so a bad DSN or an
// unreachable database fails at startup rather than on the first checkout.
func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	cfg.MaxConns = maxConns
	cfg.MaxConnIdleTime = connIdleTime
	cfg.MaxConnLifetime = connLifetime

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("open pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}

	return pool, nil
}
