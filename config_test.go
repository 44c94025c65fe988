package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, k := range []string{"ARTM_DIR", "HTTP_ADDR", "REDIS_ADDR", "API_KEYS", "LOG_LEVEL", "ARTM_ECHO"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, ".", cfg.Dir)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "", cfg.RedisAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.Echo)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("ARTM_DIR", "/srv/orders")
	t.Setenv("HTTP_ADDR", "127.0.0.1:8000")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("API_KEYS", "a, b")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("ARTM_ECHO", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, Config{
		Dir:       "/srv/orders",
		HTTPAddr:  "127.0.0.1:8000",
		RedisAddr: "redis:6379",
		APIKeys:   "a, b",
		LogLevel:  "debug",
		Echo:      true,
	}, cfg)
}

func TestLoadConfigError(t *testing.T) {
	t.Setenv("ARTM_ECHO", "not-a-bool")
	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestParseAPIKeys(t *testing.T) {
	keys := parseAPIKeys(" one ,two,, ")
	assert.Equal(t, map[string]struct{}{"one": {}, "two": {}}, keys)
	assert.Empty(t, parseAPIKeys(""))
	assert.Equal(t, map[string]struct{}{"a": {}, "b": {}, "c": {}}, parseAPIKeys("a b\tc"))
}
