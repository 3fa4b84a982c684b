package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/gophaccounts/internal/flagx"
	"github.com/dmitrijs2005/gophaccounts/internal/timex"
)

// JsonConfig is the on-disk shape of the CLI config file. Absent fields
// leave the current values untouched.
type JsonConfig struct {
	ServerEndpointAddr *string         `json:"server_endpoint_addr"`
	RequestTimeout     *timex.Duration `json:"request_timeout"`
	WorkspaceID        *int64          `json:"workspace_id"`
}

// parseJSON overlays cfg with the file named by -c/-config in args.
func parseJSON(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if jc.ServerEndpointAddr != nil {
		cfg.ServerEndpointAddr = *jc.ServerEndpointAddr
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.WorkspaceID != nil {
		cfg.WorkspaceID = *jc.WorkspaceID
	}
	return nil
}
