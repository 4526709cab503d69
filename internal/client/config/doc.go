// Package config loads runtime configuration for the account client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJSON) selected via flags: -c or -config.
//  3. Environment variables prefixed with ACCOUNTS_ (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string     base URL of the account service (scheme://host:port)
//	-s string     path of the local storage file (":memory:" for none)
//	-l string     interface language (en, tr)
//	-p int        user directory page size
//	-t duration   per-request timeout (e.g. 10s)
//	-v string     log level (debug, info, warn, error)
//
// # JSON schema
//
// Durations may be given as strings ("10s") or integer nanoseconds:
//
//	{
//	  "api_base_url": "http://localhost:8080",
//	  "storage_path": "client.db",
//	  "language": "tr",
//	  "page_size": 3,
//	  "request_timeout": "10s",
//	  "log_level": "debug"
//	}
//
// The assembled Config is checked with Validate before use.
package config
