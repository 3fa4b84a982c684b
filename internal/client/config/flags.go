package config

import (
	"flag"
	"fmt"
	"io"

	"github.com/dmitrijs2005/gophaccounts/internal/flagx"
)

// parseFlags overlays cfg with -a, -i and -w from args. Other flags are
// ignored.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-i", "-w"})

	fs := flag.NewFlagSet("cli", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port of the accounts server")
	fs.Var(flagx.Seconds{D: &cfg.RequestTimeout}, "i", "request timeout (seconds)")
	fs.Int64Var(&cfg.WorkspaceID, "w", cfg.WorkspaceID, "default workspace id")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	return nil
}
