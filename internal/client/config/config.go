package config

import "time"

// Config holds runtime settings for the moodscreen client.
//
// Fields:
//   - BaseURL: backend API root including the version prefix.
//   - Timeout: per-request limit applied by the HTTP transport.
//   - StoragePath: SQLite file backing the local key/value storage.
//   - Verbose: enables debug logging (one record per backend call).
type Config struct {
	BaseURL     string
	Timeout     time.Duration
	StoragePath string
	Verbose     bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:8088/api/v1"
	c.Timeout = 5 * time.Second
	c.StoragePath = "moodscreen.db"
	c.Verbose = false
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
