package client

import (
	"context"

	"github.com/dmitrijs2005/gophaccounts/internal/server/models"
)

type Client interface {
	Close() error
	SignUp(ctx context.Context, in models.CreateUser) (*models.User, error)
	SignIn(ctx context.Context, in models.SignInUser) (*models.User, error)
	FindUser(ctx context.Context, workspaceID int64, email string) (*models.User, error)
	DeleteUser(ctx context.Context, id int64) (bool, error)
	DeleteUserByEmail(ctx context.Context, workspaceID int64, email string) (bool, error)
	Ping(ctx context.Context) error
}
