package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/gophaccounts/internal/flagx"
	"github.com/dmitrijs2005/gophaccounts/internal/timex"
)

// JsonConfig is the on-disk shape of the server config file. Durations
// accept "5s" strings or integer nanoseconds. Pointer fields distinguish
// "absent" from zero so that a partial file only overrides what it names.
type JsonConfig struct {
	EndpointAddrGRPC       *string         `json:"endpoint_addr_grpc"`
	DatabaseDSN            *string         `json:"database_dsn"`
	DatabaseMaxConns       *int32          `json:"database_max_conns"`
	DatabaseConnectTimeout *timex.Duration `json:"database_connect_timeout"`
	HashMemoryKiB          *uint32         `json:"hash_memory_kib"`
	HashIterations         *uint32         `json:"hash_iterations"`
	HashParallelism        *uint8          `json:"hash_parallelism"`
	LogLevel               *string         `json:"log_level"`
}

// parseJSON loads the file named by -c/-config in args, if any, and copies
// the fields it sets into config.
func parseJSON(config *Config, args []string) error {

	path := flagx.ConfigPath(args)

	// nothing to load
	if path == "" {
		return nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	setIf(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setIf(&config.DatabaseDSN, c.DatabaseDSN)
	setIf(&config.DatabaseMaxConns, c.DatabaseMaxConns)
	setIf(&config.HashMemoryKiB, c.HashMemoryKiB)
	setIf(&config.HashIterations, c.HashIterations)
	setIf(&config.HashParallelism, c.HashParallelism)
	setIf(&config.LogLevel, c.LogLevel)
	if c.DatabaseConnectTimeout != nil {
		config.DatabaseConnectTimeout = c.DatabaseConnectTimeout.Duration
	}

	return nil
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
