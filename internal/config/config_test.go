package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/calibra/internal/metrics"
)

// isolate points every lookup at an empty temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	for _, k := range []string{
		"CALIBRA_CONFIG", "CALIBRA_DB", "CALIBRA_CHALLENGE_BANK", "CALIBRA_LOG_MODE",
		"CALIBRA_LOG_LEVEL", "CALIBRA_LOG_HASH_SALT", "CALIBRA_LOG_REDACTION",
		"CALIBRA_TREND_POLICY", "CALIBRA_TREND_WINDOW", "CALIBRA_MIN_POOL_SIZE",
		"CALIBRA_POOL_REFRESH", "CALIBRA_LLM_PROVIDER",
	} {
		t.Setenv(k, "")
	}
	return dir
}

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	isolate(t)
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	dir := isolate(t)
	_, err := Load(filepath.Join(dir, "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadFromXDG(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "calibra", "config.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(`
metrics:
  trend:
    policy: halves
    threshold: 7.5
benchmark:
  min_pool_size: 20
  refresh_interval: 90m
patterns:
  failing_score: 50
`), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, metrics.PolicyHalves, cfg.Metrics.Trend.Policy)
	assert.Equal(t, 7.5, cfg.Metrics.Trend.Threshold)
	assert.Equal(t, 5, cfg.Metrics.Trend.Window, "unset keys keep their defaults")
	assert.Equal(t, 20, cfg.Benchmark.MinPoolSize)
	assert.Equal(t, 90*time.Minute, cfg.Benchmark.RefreshInterval)
	assert.Equal(t, 50.0, cfg.Patterns.FailingScore)
}

func TestEnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("benchmark:\n  min_pool_size: 20\n"), 0o644))

	t.Setenv("CALIBRA_CONFIG", path)
	t.Setenv("CALIBRA_MIN_POOL_SIZE", "75")
	t.Setenv("CALIBRA_DB", "/tmp/calibra-test.db")
	t.Setenv("CALIBRA_LOG_REDACTION", "off")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 75, cfg.Benchmark.MinPoolSize)
	assert.Equal(t, "/tmp/calibra-test.db", cfg.Store.Path)
	assert.True(t, cfg.Log.DisableRedaction)
}

func TestEnvBadValue(t *testing.T) {
	isolate(t)
	t.Setenv("CALIBRA_TREND_WINDOW", "five")
	_, err := Load("")
	assert.ErrorContains(t, err, "CALIBRA_TREND_WINDOW")
}

func TestValidateReportsEverySection(t *testing.T) {
	cfg := Default()
	cfg.Metrics.Trend.Policy = "weekly"
	cfg.Benchmark.MinPoolSize = 0
	cfg.Store.SnapshotKeep = 0

	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorContains(t, err, "metrics:")
	assert.ErrorContains(t, err, "benchmark:")
	assert.ErrorContains(t, err, "store:")
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("metrics: [unclosed"))
	assert.Error(t, err)
}
