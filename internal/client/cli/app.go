package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/gophaccounts/internal/client/client"
	"github.com/dmitrijs2005/gophaccounts/internal/client/config"
	"github.com/dmitrijs2005/gophaccounts/internal/server/models"
)

type App struct {
	config *config.Config
	client client.Client
	reader *bufio.Reader
	out    io.Writer

	// signedIn is the account of the last successful signin.
	signedIn *models.User
}

func NewApp(c *config.Config) (*App, error) {

	apiClient, err := client.NewAccountsClient(c.ServerEndpointAddr, c.RequestTimeout)
	if err != nil {
		return nil, err
	}

	return newApp(c, apiClient, os.Stdin, os.Stdout), nil
}

func newApp(c *config.Config, cl client.Client, in io.Reader, out io.Writer) *App {
	return &App{config: c, client: cl, reader: bufio.NewReader(in), out: out}
}

func (a *App) getStatus() string {
	if a.signedIn == nil {
		return ""
	}
	return fmt.Sprintf("(%s ws=%d)", a.signedIn.Email, a.signedIn.WorkspaceID)
}

// Run starts the REPL and closes the connection when it returns.
func (a *App) Run(ctx context.Context) error {
	defer a.client.Close()

	fmt.Fprintln(a.out, "Accounts CLI (type 'help' for commands)")
	if err := a.Ping(ctx); err != nil {
		fmt.Fprintf(a.out, "warning: %v\n", err)
	}

	runREPL(ctx, a, a.getStatus, a.reader, a.out)
	return nil
}
