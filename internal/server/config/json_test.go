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

func Test_parseJson(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, map[string]any{
		"endpoint_addr_http":  "www.example:9000",
		"database_dsn":        "dashboard.db",
		"generation_base_url": "http://gen.example",
		"publishing_base_url": "http://pub.example",
		"http_client_timeout": "45s",
		"scheduler_catch_up":  true,
	})

	t.Run("loads from json", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", path}

		cfg := &Config{}
		parseJson(cfg)

		assert.Equal(t, "www.example:9000", cfg.EndpointAddrHTTP)
		assert.Equal(t, "dashboard.db", cfg.DatabaseDSN)
		assert.Equal(t, "http://gen.example", cfg.GenerationBaseURL)
		assert.Equal(t, "http://pub.example", cfg.PublishingBaseURL)
		assert.Equal(t, 45*time.Second, cfg.HTTPClientTimeout)
		assert.True(t, cfg.SchedulerCatchUp)
	})

	t.Run("no flag means no overlay", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "autoblog.db", cfg.DatabaseDSN)
	})

	t.Run("missing file panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", filepath.Join(t.TempDir(), "absent.json")}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})
}

func Test_parseEnv(t *testing.T) {
	t.Setenv("ADDRESS", ":9999")
	t.Setenv("DATABASE_DSN", "env.db")
	t.Setenv("HTTP_CLIENT_TIMEOUT", "10s")
	t.Setenv("SCHEDULER_CATCH_UP", "true")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, ":9999", cfg.EndpointAddrHTTP)
	assert.Equal(t, "env.db", cfg.DatabaseDSN)
	assert.Equal(t, 10*time.Second, cfg.HTTPClientTimeout)
	assert.True(t, cfg.SchedulerCatchUp)
}
