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
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Pool.WorkerCount)
	assert.Equal(t, 100, cfg.Retry.InitialBackoffMs)
	assert.Equal(t, 5*time.Minute, cfg.Durable.IntentTimeout)
	assert.Equal(t, ":8080", cfg.API.Addr)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	yaml := `
pool:
  worker_count: 2
retry:
  initial_backoff_ms: 250
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "strand.yaml"), []byte(yaml), 0o600))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Pool.WorkerCount)
	assert.Equal(t, 250, cfg.Retry.InitialBackoffMs)
	// Untouched values keep their defaults.
	assert.Equal(t, float64(2), cfg.Retry.Base)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://env-wins")
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "postgres://env-wins", cfg.Database.URL)
}

func TestLoadRejectsInvalidRetry(t *testing.T) {
	dir := t.TempDir()
	yaml := `
retry:
  base: 0.5
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "strand.yaml"), []byte(yaml), 0o600))

	_, err := Load(dir)
	assert.ErrorContains(t, err, "retry.base")
}

func TestLoadFileOverridesRateLimit(t *testing.T) {
	dir := t.TempDir()
	yaml := `
agent:
  rate_limit:
    requests_per_minute: 120
    burst: 20
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "strand.yaml"), []byte(yaml), 0o600))

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg.Agent.RateLimit)
	assert.Equal(t, 120, cfg.Agent.RateLimit.RequestsPerMinute)
	assert.Equal(t, 20, cfg.Agent.RateLimit.Burst)
}

func TestLoadRejectsInvalidRateLimit(t *testing.T) {
	dir := t.TempDir()
	yaml := `
agent:
  rate_limit:
    requests_per_minute: 0
    burst: 10
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "strand.yaml"), []byte(yaml), 0o600))

	_, err := Load(dir)
	assert.ErrorContains(t, err, "INVALID_RATE_LIMIT_CONFIG")
}
