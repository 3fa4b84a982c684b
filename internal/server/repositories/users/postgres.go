package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophaccounts/internal/common"
	"github.com/dmitrijs2005/gophaccounts/internal/dbx"
	"github.com/dmitrijs2005/gophaccounts/internal/server/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation is the SQLSTATE raised by the (ws_id, email) constraint.
const uniqueViolation = "23505"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// userRow mirrors the users table.
type userRow struct {
	ID           int64
	WorkspaceID  int64
	FullName     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

func (r userRow) toModel() *models.User {
	return &models.User{
		ID:          r.ID,
		WorkspaceID: r.WorkspaceID,
		FullName:    r.FullName,
		Email:       r.Email,
		CreatedAt:   r.CreatedAt,
	}
}

func (r *PostgresRepository) Create(ctx context.Context, user *NewUser) (*models.User, error) {

	query :=
		`INSERT INTO users (ws_id, email, fullname, password_hash)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, ws_id, fullname, email, created_at
		 `

	var row userRow
	err := r.db.QueryRow(ctx, query,
		user.WorkspaceID, user.Email, user.FullName, user.PasswordHash).
		Scan(&row.ID, &row.WorkspaceID, &row.FullName, &row.Email, &row.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, fmt.Errorf("%w: %s", common.ErrorDuplicateEmail, user.Email)
		}
		return nil, fmt.Errorf("%w: %w", common.ErrorStore, err)
	}

	return row.toModel(), nil
}

func (r *PostgresRepository) FindByEmail(ctx context.Context, workspaceID int64, email string) (*models.User, error) {
	query :=
		`SELECT id, ws_id, fullname, email, created_at FROM users
		 WHERE ws_id = $1 AND email = $2
		 `

	var row userRow
	err := r.db.QueryRow(ctx, query, workspaceID, email).
		Scan(&row.ID, &row.WorkspaceID, &row.FullName, &row.Email, &row.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("%w: %w", common.ErrorStore, err)
	}

	return row.toModel(), nil
}

func (r *PostgresRepository) FindCredential(ctx context.Context, workspaceID int64, email string) (*Credential, error) {
	query :=
		`SELECT id, ws_id, fullname, email, password_hash, created_at FROM users
		 WHERE ws_id = $1 AND email = $2
		 `

	var row userRow
	err := r.db.QueryRow(ctx, query, workspaceID, email).
		Scan(&row.ID, &row.WorkspaceID, &row.FullName, &row.Email, &row.PasswordHash, &row.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("%w: %w", common.ErrorStore, err)
	}

	return &Credential{User: *row.toModel(), PasswordHash: row.PasswordHash}, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query := `DELETE FROM users WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("%w: %w", common.ErrorStore, err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r *PostgresRepository) DeleteByEmail(ctx context.Context, workspaceID int64, email string) (bool, error) {
	query := `DELETE FROM users WHERE ws_id = $1 AND email = $2`

	tag, err := r.db.Exec(ctx, query, workspaceID, email)
	if err != nil {
		return false, fmt.Errorf("%w: %w", common.ErrorStore, err)
	}

	return tag.RowsAffected() > 0, nil
}
