package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// configEnvVars lists every variable Load reads so tests start from a clean slate.
var configEnvVars = []string{
	"APIREF_SERVER_PORT",
	"APIREF_SERVER_LOG_LEVEL",
	"APIREF_SERVER_SHUTDOWN_TIMEOUT",
	"APIREF_SERVER_READ_HEADER_TIMEOUT",
	"APIREF_CATALOG_PATH",
	"APIREF_VIEW_HEADER_OFFSET",
}

// setupEnv clears the config variables, applies envVars and runs the test
// from an empty directory so no stray config.yaml or .env is picked up.
func setupEnv(t *testing.T, envVars map[string]string) {
	t.Helper()

	for _, name := range configEnvVars {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}
	for name, value := range envVars {
		t.Setenv(name, value)
	}

	t.Chdir(t.TempDir())
}

// TestLoadDefaults verifies that the Load function sets the expected default values
// when no environment variables are set.
func TestLoadDefaults(t *testing.T) {
	setupEnv(t, nil)

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with default values")
	require.NotNil(t, cfg, "Load() should return a non-nil config")
	assert.Equal(t, 8080, cfg.Server.Port, "Default server port should be 8080")
	assert.Equal(t, "info", cfg.Server.LogLevel, "Default log level should be 'info'")
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadHeaderTimeout)
	assert.Equal(t, "", cfg.Catalog.Path)
	assert.Equal(t, 100, cfg.View.HeaderOffset)
}

// TestLoadFromEnv verifies that the Load function correctly reads values from environment variables.
func TestLoadFromEnv(t *testing.T) {
	catalogPath := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(catalogPath, []byte("categories: []\n"), 0o600))

	setupEnv(t, map[string]string{
		"APIREF_SERVER_PORT":             "9090",
		"APIREF_SERVER_LOG_LEVEL":        "debug",
		"APIREF_SERVER_SHUTDOWN_TIMEOUT": "3s",
		"APIREF_CATALOG_PATH":            catalogPath,
		"APIREF_VIEW_HEADER_OFFSET":      "64",
	})

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with valid environment variables")
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, catalogPath, cfg.Catalog.Path)
	assert.Equal(t, 64, cfg.View.HeaderOffset)
}

func TestLoadFromConfigFileAndDotEnv(t *testing.T) {
	setupEnv(t, map[string]string{
		"APIREF_SERVER_LOG_LEVEL": "error",
	})

	configYAML := "server:\n  port: 7070\n  log_level: warn\nview:\n  header_offset: 80\n"
	require.NoError(t, os.WriteFile("config.yaml", []byte(configYAML), 0o600))
	require.NoError(t, os.WriteFile(".env", []byte("APIREF_VIEW_HEADER_OFFSET=120\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("APIREF_VIEW_HEADER_OFFSET") })

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port, "port should come from config.yaml")
	assert.Equal(t, "error", cfg.Server.LogLevel, "environment should override config.yaml")
	assert.Equal(t, 120, cfg.View.HeaderOffset, ".env values should override config.yaml")
}

func TestLoadNormalizesLogLevel(t *testing.T) {
	tests := []struct {
		configured string
		want       string
	}{
		{configured: "INFO", want: "info"},
		{configured: "Debug", want: "debug"},
		{configured: "warning", want: "warn"},
		{configured: " WARN ", want: "warn"},
		{configured: "ERROR", want: "error"},
	}

	for _, tc := range tests {
		t.Run(tc.configured, func(t *testing.T) {
			setupEnv(t, map[string]string{"APIREF_SERVER_LOG_LEVEL": tc.configured})

			cfg, err := Load()

			require.NoError(t, err)
			assert.Equal(t, tc.want, cfg.Server.LogLevel)
		})
	}
}

// TestLoadValidationErrors verifies that the Load function correctly validates the configuration.
func TestLoadValidationErrors(t *testing.T) {
	testCases := []struct {
		name           string
		envVars        map[string]string
		errorSubstring string
	}{
		{
			name:           "Invalid port number",
			envVars:        map[string]string{"APIREF_SERVER_PORT": "999999"},
			errorSubstring: "validation failed",
		},
		{
			name:           "Invalid log level",
			envVars:        map[string]string{"APIREF_SERVER_LOG_LEVEL": "invalid-level"},
			errorSubstring: "validation failed",
		},
		{
			name:           "Missing catalog file",
			envVars:        map[string]string{"APIREF_CATALOG_PATH": "/does/not/exist.yaml"},
			errorSubstring: "validation failed",
		},
		{
			name:           "Negative header offset",
			envVars:        map[string]string{"APIREF_VIEW_HEADER_OFFSET": "-1"},
			errorSubstring: "validation failed",
		},
		{
			name:           "Zero shutdown timeout",
			envVars:        map[string]string{"APIREF_SERVER_SHUTDOWN_TIMEOUT": "0s"},
			errorSubstring: "validation failed",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			setupEnv(t, tc.envVars)

			cfg, err := Load()

			require.Error(t, err, "Load() should return an error with invalid configuration")
			assert.Contains(t, err.Error(), tc.errorSubstring)
			assert.Nil(t, cfg, "Config should be nil when an error occurs")
		})
	}
}
