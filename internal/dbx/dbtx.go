// Package dbx provides the tiny DB abstraction shared by repositories:
// the query subset implemented by *pgxpool.Pool, pgx.Tx and pgxmock pools.
package dbx

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the subset of pgx used by our repos.
// *pgxpool.Pool, *pgx.Conn and pgx.Tx all satisfy this interface.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
