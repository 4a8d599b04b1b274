// Package config handles configuration for the terminal client.
package config

import "time"

// Config holds runtime settings for the TeyvatDex CLI.
//
// Fields:
//   - ServerURL: base URL of the backend HTTP API.
//   - CacheFile: path to the local SQLite session cache.
//   - RequestTimeout: per-request timeout for API calls.
type Config struct {
	ServerURL      string
	CacheFile      string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://localhost:8080"
	c.CacheFile = "teyvatdex.db"
	c.RequestTimeout = 5 * time.Second
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
