package users

import (
	"context"

	"github.com/dmitrijs2005/gophaccounts/internal/server/models"
)

// NewUser is the row written by Create. PasswordHash is a PHC string.
type NewUser struct {
	WorkspaceID  int64
	FullName     string
	Email        string
	PasswordHash string
}

// Credential pairs an account with its stored password hash. It is returned
// only by FindCredential and must not leave the credential store.
type Credential struct {
	User         models.User
	PasswordHash string
}

// Repository persists accounts. Lookups return common.ErrorNotFound when no
// row matches; every email-based call is scoped by workspace.
type Repository interface {
	Create(ctx context.Context, user *NewUser) (*models.User, error)
	FindByEmail(ctx context.Context, workspaceID int64, email string) (*models.User, error)
	FindCredential(ctx context.Context, workspaceID int64, email string) (*Credential, error)
	Delete(ctx context.Context, id int64) (bool, error)
	DeleteByEmail(ctx context.Context, workspaceID int64, email string) (bool, error)
}
