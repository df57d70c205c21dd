package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()

	path := filepath.Join(dir, fileName)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Reads values from the file", func(t *testing.T) {
		// Given: a config file
		path := writeConfig(t, t.TempDir(), `
log-level: debug
http-host: 0.0.0.0
http-port: "8081"
game-ttl: 30m
redis:
  enabled: true
  host: redis
  port: "6380"
  db: 2
`)

		// When: loading it
		conf, err := Load(path)

		// Then: every value is taken from the file
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "0.0.0.0:8081", conf.HTTPAddr())
		assert.Equal(t, 30*time.Minute, conf.GameTTL)
		assert.True(t, conf.Redis.Enabled)
		assert.Equal(t, "redis:6380", conf.Redis.GetRedisAddr())
		assert.Equal(t, 2, conf.Redis.DB)
	})

	t.Run("Falls back to defaults without a file", func(t *testing.T) {
		// When: loading with no file
		conf, err := Load("")

		// Then: defaults apply
		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, "127.0.0.1:9090", conf.HTTPAddr())
		assert.Equal(t, time.Hour, conf.GameTTL)
		assert.False(t, conf.Redis.Enabled)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		// Given: a config file and an env override
		path := writeConfig(t, t.TempDir(), "http-port: \"8081\"\n")
		t.Setenv("HTTP_PORT", "7070")

		// When: loading it
		conf, err := Load(path)

		// Then: the env value wins
		require.NoError(t, err)
		assert.Equal(t, "7070", conf.HTTPPort)
	})

	t.Run("Rejects an unknown log level", func(t *testing.T) {
		// Given: a config with a bad log level
		path := writeConfig(t, t.TempDir(), "log-level: loud\n")

		// When: loading it
		_, err := Load(path)

		// Then: validation fails
		require.ErrorIs(t, err, ErrUnknownLogLevel)
	})

	t.Run("Returns error for a missing file", func(t *testing.T) {
		// When: loading a path that does not exist
		_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		// Then: an error is returned
		require.Error(t, err)
	})
}

func TestLocate(t *testing.T) {
	t.Run("Prefers the working directory", func(t *testing.T) {
		// Given: a config file in the base directory
		dir := t.TempDir()
		path := writeConfig(t, dir, "log-level: info\n")

		// Then: it is found
		assert.Equal(t, path, Locate(dir))
	})

	t.Run("Returns empty string when nothing is found", func(t *testing.T) {
		// Given: empty base and XDG directories
		dir := t.TempDir()
		t.Cleanup(xdg.Reload)
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())
		t.Setenv("XDG_CONFIG_DIRS", t.TempDir())
		xdg.Reload()

		// Then: nothing is found
		assert.Empty(t, Locate(dir))
	})
}
