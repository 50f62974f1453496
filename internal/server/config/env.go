package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config fields from environment variables. A .env file in
// the working directory is loaded first if present; real environment
// variables win over .env values (godotenv does not override existing ones).
//
// Recognized variables:
//
//	ADDRESS              HTTP bind address
//	DATABASE_DSN         database DSN
//	GENERATION_BASE_URL  generation endpoint base URL
//	PUBLISHING_BASE_URL  publishing endpoint base URL
//	HTTP_CLIENT_TIMEOUT  endpoint client timeout (Go duration, e.g. "30s")
//	SCHEDULER_CATCH_UP   "true" to run a missed scheduled fire on startup
func parseEnv(config *Config) {
	// missing .env is the normal case
	_ = godotenv.Load()

	if v := os.Getenv("ADDRESS"); v != "" {
		config.EndpointAddrHTTP = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("GENERATION_BASE_URL"); v != "" {
		config.GenerationBaseURL = v
	}
	if v := os.Getenv("PUBLISHING_BASE_URL"); v != "" {
		config.PublishingBaseURL = v
	}
	if v := os.Getenv("HTTP_CLIENT_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.HTTPClientTimeout = d
		}
	}
	if v := os.Getenv("SCHEDULER_CATCH_UP"); v != "" {
		config.SchedulerCatchUp = v == "true"
	}
}
