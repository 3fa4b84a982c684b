package config

import (
	"fmt"
	"time"
)

// Config holds runtime settings for the accounts CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the accounts gRPC endpoint.
//   - RequestTimeout: deadline applied to every call.
//   - WorkspaceID: workspace used when a command does not name one; 0 means
//     the CLI asks for it.
type Config struct {
	ServerEndpointAddr string
	RequestTimeout     time.Duration
	WorkspaceID        int64
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.RequestTimeout = 5 * time.Second
	c.WorkspaceID = 0
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags in args. Later sources take
// precedence over earlier ones.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJSON(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if cfg.RequestTimeout <= 0 {
		return nil, fmt.Errorf("request timeout must be positive, got %s", cfg.RequestTimeout)
	}
	if cfg.WorkspaceID < 0 {
		return nil, fmt.Errorf("workspace id must not be negative, got %d", cfg.WorkspaceID)
	}
	return cfg, nil
}
