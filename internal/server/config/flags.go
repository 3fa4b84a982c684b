package config

import (
	"flag"
	"fmt"
	"io"
	"math"

	"github.com/dmitrijs2005/gophaccounts/internal/flagx"
)

// parseFlags overlays config with command-line flags from args.
//
// Supported flags:
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-d string   PostgreSQL DSN
//	-m int      maximum pool connections
//	-t value    connect timeout, seconds or a duration such as "1m"
//	-l string   log level
//
// Only these flags are parsed (see flagx.FilterArgs); -c is handled by
// parseJSON.
func parseFlags(config *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-d", "-m", "-t", "-l"})

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	maxConns := fs.Int("m", int(config.DatabaseMaxConns), "maximum database connections")
	fs.Var(flagx.Seconds{D: &config.DatabaseConnectTimeout}, "t", "database connect timeout (seconds)")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	if *maxConns < math.MinInt32 || *maxConns > math.MaxInt32 {
		return fmt.Errorf("parse flags: max conns %d out of range", *maxConns)
	}
	config.DatabaseMaxConns = int32(*maxConns)
	return nil
}
