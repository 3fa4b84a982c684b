package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "127.0.0.1:50051", c.ServerEndpointAddr)
	assert.Equal(t, 5*time.Second, c.RequestTimeout)
	assert.Equal(t, int64(0), c.WorkspaceID)
}

func TestLoadConfig_NoArgsUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:50051", cfg.ServerEndpointAddr)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
}

func TestLoadConfig_FlagsOverrideJSON(t *testing.T) {
	path := writeTempJSON(t, map[string]any{
		"server_endpoint_addr": "json:1",
		"request_timeout":      "2s",
		"workspace_id":         3,
	})

	cfg, err := LoadConfig([]string{"-c", path, "-a", "flag:2"})
	require.NoError(t, err)

	assert.Equal(t, "flag:2", cfg.ServerEndpointAddr)
	assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
	assert.Equal(t, int64(3), cfg.WorkspaceID)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		args func(t *testing.T) []string
	}{
		{"bad timeout", func(*testing.T) []string { return []string{"-i", "abc"} }},
		{"zero timeout", func(*testing.T) []string { return []string{"-i", "0"} }},
		{"negative workspace", func(*testing.T) []string { return []string{"-w", "-1"} }},
		{"missing file", func(t *testing.T) []string { return []string{"-c", filepath.Join(t.TempDir(), "x.json")} }},
		{"bad json", func(t *testing.T) []string {
			p := filepath.Join(t.TempDir(), "bad.json")
			require.NoError(t, os.WriteFile(p, []byte("{"), 0o600))
			return []string{"-c", p}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(tt.args(t))
			assert.Error(t, err)
		})
	}
}
