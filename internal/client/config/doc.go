// Package config loads runtime configuration for the moodscreen client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   backend API base URL
//	-d string   path of the local SQLite storage file
//	-v          verbose (debug) logging
//
// # JSON schema
//
// The timeout uses timex.Duration, so it can be a string like "5s" or integer
// nanoseconds. Keys that are absent keep their previous value:
//
//	{
//	  "base_url": "http://localhost:8088/api/v1",
//	  "timeout": "5s",
//	  "storage_path": "moodscreen.db",
//	  "verbose": false
//	}
package config
