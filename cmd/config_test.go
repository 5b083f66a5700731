package cmd_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"tubertreats/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"HTTP_PORT", "APP_ENV", "LOG_LEVEL", "SHUTDOWN_TIMEOUT"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("should fall back to defaults without a .env file", func(t *testing.T) {
		clearEnv(t)

		config, err := cmd.LoadConfig(filepath.Join(t.TempDir(), ".env"))

		require.NoError(t, err)
		assert.Equal(t, "8080", config.HTTPPort)
		assert.Equal(t, cmd.EnvProduction, config.AppEnv)
		assert.False(t, config.IsDevelopment())
		assert.Equal(t, slog.LevelInfo, config.LogLevel)
		assert.Equal(t, 10*time.Second, config.ShutdownTimeout)
	})

	t.Run("should read values from the .env file", func(t *testing.T) {
		clearEnv(t)
		envFile := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(envFile, []byte(
			"HTTP_PORT=9090\nAPP_ENV=development\nLOG_LEVEL=debug\nSHUTDOWN_TIMEOUT=3s\n",
		), 0o600))

		config, err := cmd.LoadConfig(envFile)

		require.NoError(t, err)
		assert.Equal(t, "9090", config.HTTPPort)
		assert.True(t, config.IsDevelopment())
		assert.Equal(t, slog.LevelDebug, config.LogLevel)
		assert.Equal(t, 3*time.Second, config.ShutdownTimeout)
	})

	t.Run("should prefer the process environment", func(t *testing.T) {
		clearEnv(t)
		envFile := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(envFile, []byte("HTTP_PORT=9090\n"), 0o600))
		t.Setenv("HTTP_PORT", "7070")

		config, err := cmd.LoadConfig(envFile)

		require.NoError(t, err)
		assert.Equal(t, "7070", config.HTTPPort)
	})

	t.Run("should reject an invalid shutdown timeout", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("SHUTDOWN_TIMEOUT", "soon")

		_, err := cmd.LoadConfig()

		assert.ErrorContains(t, err, "SHUTDOWN_TIMEOUT")
	})

	t.Run("should reject an unknown log level", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("LOG_LEVEL", "chatty")

		_, err := cmd.LoadConfig()

		assert.ErrorContains(t, err, "LOG_LEVEL")
	})
}
