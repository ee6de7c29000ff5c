package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func Test_parseEnv(t *testing.T) {
	t.Run("dotenv file", func(t *testing.T) {
		clearEnv(t)
		path := writeTempFile(t, t.TempDir(), ".env", `
# yoga client
YOGA_API_URL=http://studio:9000
YOGA_REQUEST_TIMEOUT=1500ms
YOGA_CHECK_INTERVAL=1m
YOGA_LOG_BACKEND=zap
`)
		cfg := &Config{LogLevel: "info"}
		parseEnv(cfg, []string{"-env", path})

		assert.Equal(t, "http://studio:9000", cfg.APIBaseURL)
		assert.Equal(t, 1500*time.Millisecond, cfg.RequestTimeout)
		assert.Equal(t, time.Minute, cfg.CheckInterval)
		assert.Equal(t, "zap", cfg.LogBackend)
		assert.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("process env wins over file", func(t *testing.T) {
		clearEnv(t)
		path := writeTempFile(t, t.TempDir(), ".env", "YOGA_API_URL=http://file\n")
		t.Setenv(EnvAPIURL, "http://process")

		cfg := &Config{}
		parseEnv(cfg, []string{"-env", path})
		assert.Equal(t, "http://process", cfg.APIBaseURL)
	})

	t.Run("missing file is ignored", func(t *testing.T) {
		clearEnv(t)
		cfg := &Config{APIBaseURL: "http://default"}
		require.NotPanics(t, func() { parseEnv(cfg, noEnvFile(t)) })
		assert.Equal(t, "http://default", cfg.APIBaseURL)
	})

	t.Run("bad timeout panics", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvRequestTimeout, "soon")
		require.Panics(t, func() { parseEnv(&Config{}, noEnvFile(t)) })
	})
}
