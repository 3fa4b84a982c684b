// Package db opens the PostgreSQL connection pool shared by the repositories.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

// PoolConfig tunes the pgx pool on top of the DSN.
type PoolConfig struct {
	DSN            string
	MaxConns       int32
	ConnectTimeout time.Duration
}

// NewPoolConfig parses the DSN and applies pool limits.
func NewPoolConfig(c PoolConfig) (*pgxpool.Config, error) {
	config, err := pgxpool.ParseConfig(c.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse pgx config: %w", err)
	}
	if c.MaxConns > 0 {
		config.MaxConns = c.MaxConns
	}
	if c.ConnectTimeout > 0 {
		config.ConnConfig.ConnectTimeout = c.ConnectTimeout
	}
	config.MinConns = 0
	config.MaxConnLifetime = time.Hour
	config.HealthCheckPeriod = 30 * time.Second
	return config, nil
}

// Connect opens a pgx connection pool and performs a Ping to ensure connectivity.
func Connect(ctx context.Context, c PoolConfig) (*pgxpool.Pool, error) {
	config, err := NewPoolConfig(c)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("open pgx pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return pool, nil
}

// OpenDB exposes the pool as a *sql.DB for tools that need database/sql,
// such as the migration runner. Closing the returned DB does not close the pool.
func OpenDB(pool *pgxpool.Pool) *sql.DB {
	return stdlib.OpenDBFromPool(pool)
}
