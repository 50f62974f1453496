// Package config handles configuration for the AutoBlog server, including
// defaults, JSON overlay, environment variables, and command-line flags.
package config

import "time"

// Config holds runtime settings for the AutoBlog server.
//
// Fields:
//   - EndpointAddrHTTP: bind address for the dashboard HTTP endpoint.
//   - DatabaseDSN: SQLite file path or postgres:// DSN (pgx).
//   - GenerationBaseURL / PublishingBaseURL: external endpoint base URLs,
//     overridable for testing against stubs.
//   - HTTPClientTimeout: per-request timeout for the endpoint clients.
//   - SchedulerCatchUp: when true, a missed scheduled fire runs once
//     immediately on startup instead of being dropped.
type Config struct {
	EndpointAddrHTTP  string
	DatabaseDSN       string
	GenerationBaseURL string
	PublishingBaseURL string
	HTTPClientTimeout time.Duration
	SchedulerCatchUp  bool
}

// LoadDefaults populates Config with sensible development defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":8080"
	c.DatabaseDSN = "autoblog.db"
	c.GenerationBaseURL = "https://generativelanguage.googleapis.com"
	c.PublishingBaseURL = "https://www.googleapis.com"
	c.HTTPClientTimeout = 30 * time.Second
	c.SchedulerCatchUp = false
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, environment variables, and finally
// command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
