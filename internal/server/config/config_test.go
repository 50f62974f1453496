package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, ":8080", c.EndpointAddrHTTP)
	assert.Equal(t, "autoblog.db", c.DatabaseDSN)
	assert.Equal(t, "https://generativelanguage.googleapis.com", c.GenerationBaseURL)
	assert.Equal(t, "https://www.googleapis.com", c.PublishingBaseURL)
	assert.Equal(t, 30*time.Second, c.HTTPClientTimeout)
	assert.False(t, c.SchedulerCatchUp)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	c := LoadConfig()

	require.NotNil(t, c, "LoadConfig must not return nil")
	assert.Equal(t, ":8080", c.EndpointAddrHTTP)
	assert.Equal(t, "autoblog.db", c.DatabaseDSN)
	assert.Equal(t, 30*time.Second, c.HTTPClientTimeout)
}
