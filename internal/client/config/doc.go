// Package config loads runtime configuration for the accounts CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   address:port of the accounts gRPC endpoint
//	-i value    request timeout, seconds or a duration such as "1m"
//	-w int      default workspace id
//
// # JSON schema
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "request_timeout": "5s",
//	  "workspace_id": 1
//	}
//
// request_timeout may also be given as integer nanoseconds.
package config
