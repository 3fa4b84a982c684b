package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	SignUp(ctx context.Context) error
	SignIn(ctx context.Context) error
	Find(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	Ping(ctx context.Context) error
}

// runREPL reads commands line by line from reader and dispatches them to a.
// Command errors are printed and the loop continues. The loop exits on EOF,
// on "exit"/"quit", or when ctx is done.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		if ctx.Err() != nil {
			return
		}

		fmt.Fprintf(w, "accounts %s> ", statusFn())
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(w)
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			fmt.Fprintln(w, "Available commands: signup, signin, find [email], delete <id|email>, ping, exit")

		case "signup":
			cmdErr = a.SignUp(ctx)

		case "signin":
			cmdErr = a.SignIn(ctx)

		case "find":
			cmdErr = a.Find(ctx, args)

		case "delete":
			cmdErr = a.Delete(ctx, args)

		case "ping":
			cmdErr = a.Ping(ctx)

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}

		if cmdErr != nil {
			fmt.Fprintln(w, "Error:", cmdErr)
		}
	}
}
