package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://re-api.adsb.lol", cfg.REAPIBaseURL)
	assert.Equal(t, "https://api.adsb.lol", cfg.OpenAPIBaseURL)
	assert.Equal(t, "", cfg.APIKey)
	assert.Equal(t, "auto", cfg.Backend)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, "table", cfg.OutputFormat)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SKYSNOOP_BACKEND", "reapi")
	t.Setenv("SKYSNOOP_API_KEY", "secret")
	t.Setenv("SKYSNOOP_TIMEOUT", "5")
	t.Setenv("SKYSNOOP_OUTPUT_FORMAT", "json")
	t.Setenv("SKYSNOOP_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "reapi", cfg.Backend)
	assert.Equal(t, "secret", cfg.APIKey)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, "json", cfg.OutputFormat)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `backend: openapi
output_format: json
timeout: 10
log:
  level: warn
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("SKYSNOOP_CONFIG_PATH", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "openapi", cfg.Backend)
	assert.Equal(t, "json", cfg.OutputFormat)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadEnvBeatsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("backend: openapi\n"), 0o644))
	t.Setenv("SKYSNOOP_CONFIG_PATH", path)
	t.Setenv("SKYSNOOP_BACKEND", "reapi")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "reapi", cfg.Backend)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad backend", "SKYSNOOP_BACKEND", "carrier-pigeon"},
		{"bad output format", "SKYSNOOP_OUTPUT_FORMAT", "xml"},
		{"bad log level", "SKYSNOOP_LOG_LEVEL", "verbose"},
		{"bad log format", "SKYSNOOP_LOG_FORMAT", "yaml"},
		{"zero timeout", "SKYSNOOP_TIMEOUT", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
