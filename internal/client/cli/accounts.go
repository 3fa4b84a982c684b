package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophaccounts/internal/client/client"
	"github.com/dmitrijs2005/gophaccounts/internal/common"
	"github.com/dmitrijs2005/gophaccounts/internal/server/models"
)

// getSimpleText, getPositiveInt and getPassword are indirections used to
// facilitate testing.
var (
	getSimpleText  = GetSimpleText
	getPositiveInt = GetPositiveInt
	getPassword    = GetPassword
)

// workspaceID returns the configured default workspace or asks for one.
func (a *App) workspaceID() (int64, error) {
	if a.config.WorkspaceID > 0 {
		return a.config.WorkspaceID, nil
	}
	return getPositiveInt(a.reader, "Enter workspace id", a.out)
}

func (a *App) printUser(u *models.User) {
	fmt.Fprintf(a.out, "id=%d ws_id=%d email=%s name=%q created_at=%s\n",
		u.ID, u.WorkspaceID, u.Email, u.FullName, u.CreatedAt.Format("2006-01-02 15:04:05Z07:00"))
}

// SignUp prompts for the account details and a password and creates the
// account. The password is wiped before returning.
func (a *App) SignUp(ctx context.Context) error {
	ws, err := a.workspaceID()
	if err != nil {
		return err
	}
	workspace, err := getSimpleText(a.reader, "Enter workspace name", a.out)
	if err != nil {
		return err
	}
	fullName, err := getSimpleText(a.reader, "Enter full name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	u, err := a.client.SignUp(ctx, models.CreateUser{
		WorkspaceID: ws,
		Workspace:   workspace,
		FullName:    fullName,
		Email:       email,
		Password:    string(password),
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Account created:")
	a.printUser(u)
	return nil
}

// SignIn prompts for an email and password and verifies them. A rejected
// password is reported to the user and is not an error of the command.
func (a *App) SignIn(ctx context.Context) error {
	ws, err := a.workspaceID()
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	u, err := a.client.SignIn(ctx, models.SignInUser{WorkspaceID: ws, Email: email, Password: string(password)})
	if err != nil {
		if errors.Is(err, client.ErrInvalidCredentials) {
			a.signedIn = nil
			fmt.Fprintln(a.out, "Invalid email or password")
			return nil
		}
		return err
	}

	a.signedIn = u
	fmt.Fprintln(a.out, "Signed in")
	return nil
}

// Find shows the account with the email given in args or prompted for.
func (a *App) Find(ctx context.Context, args []string) error {
	ws, err := a.workspaceID()
	if err != nil {
		return err
	}

	var email string
	if len(args) > 0 {
		email = args[0]
	} else if email, err = getSimpleText(a.reader, "Enter email", a.out); err != nil {
		return err
	}

	u, err := a.client.FindUser(ctx, ws, email)
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			fmt.Fprintln(a.out, "No such account")
			return nil
		}
		return err
	}

	a.printUser(u)
	return nil
}

// Delete removes an account. A numeric argument is an account id; anything
// else is an email in the workspace.
func (a *App) Delete(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: delete <id|email>")
		return nil
	}
	target := args[0]

	var (
		deleted bool
		err     error
	)
	if id, perr := parsePositiveInt(target); perr == nil {
		deleted, err = a.client.DeleteUser(ctx, id)
	} else {
		var ws int64
		if ws, err = a.workspaceID(); err != nil {
			return err
		}
		deleted, err = a.client.DeleteUserByEmail(ctx, ws, target)
	}
	if err != nil {
		return err
	}

	if !deleted {
		fmt.Fprintln(a.out, "Nothing deleted")
		return nil
	}
	if a.signedIn != nil && (strings.EqualFold(a.signedIn.Email, target) || fmt.Sprint(a.signedIn.ID) == target) {
		a.signedIn = nil
	}
	fmt.Fprintln(a.out, "Deleted")
	return nil
}

func (a *App) Ping(ctx context.Context) error {
	if err := a.client.Ping(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Server is serving")
	return nil
}
