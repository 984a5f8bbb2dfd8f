package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:8080", cfg.APIBaseURL)
	assert.Equal(t, "snooze.db", cfg.DatabasePath)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.LogPretty)
}

func TestLoadConfigLayering(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	path := filepath.Join(t.TempDir(), "snooze.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"api_base_url": "http://json:1111",
		"request_timeout": "30s",
		"log_pretty": false
	}`), 0o600))

	// Flags beat both the JSON file and the environment.
	os.Args = []string{"snooze", "-c", path, "-a", "http://flag:2222"}
	t.Setenv("SNOOZE_LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://flag:2222", cfg.APIBaseURL)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.LogPretty)
	// Untouched field keeps its default.
	assert.Equal(t, "snooze.db", cfg.DatabasePath)
}

func TestParseJsonMissingFileFails(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"snooze", "-c", "/does/not/exist.json"}
	cfg := &Config{}
	cfg.LoadDefaults()

	require.Error(t, parseJson(cfg))
}

func TestParseJsonWithoutFlagIsNoop(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"snooze"}
	cfg := &Config{}
	cfg.LoadDefaults()
	before := *cfg

	require.NoError(t, parseJson(cfg))
	assert.Equal(t, before, *cfg)
}

func TestParseEnvOverlay(t *testing.T) {
	t.Setenv("SNOOZE_API_URL", "http://env:3333")
	t.Setenv("SNOOZE_REQUEST_TIMEOUT", "5s")
	t.Setenv("SNOOZE_LOG_PRETTY", "false")

	cfg := &Config{}
	cfg.LoadDefaults()
	require.NoError(t, parseEnv(context.Background(), cfg))

	assert.Equal(t, "http://env:3333", cfg.APIBaseURL)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.False(t, cfg.LogPretty)
	assert.Equal(t, "snooze.db", cfg.DatabasePath)
}

func TestParseFlagsOverridesTimeout(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"snooze", "-t", "3", "-d", "alt.db"}
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "alt.db", cfg.DatabasePath)
}
