// Package config loads runtime configuration for the GophSession CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected via -c or -config. Files ending in
//     .yaml or .yml are read as YAML, anything else as JSON.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   data directory
//	-s string   session storage driver: sqlite (default) or bolt
//	-b string   auth backend: mock (default) or local
//	-m int      mock backend delay (milliseconds)
//	-l string   log level
//
// # File schema
//
// Durations use timex.Duration, so they can be strings like "400ms" or
// integer nanoseconds:
//
//	{
//	  "data_dir": "/var/lib/gophsession",
//	  "storage_driver": "bolt",
//	  "auth_backend": "local",
//	  "mock_delay": "400ms",
//	  "max_failed_logins": 5,
//	  "lockout_duration": "15m",
//	  "log_level": "debug"
//	}
//
// The package does not read environment variables.
package config
