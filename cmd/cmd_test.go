package cmd

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags restores every flag to its default so executions in one
// process do not leak into each other.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("CALIBRA_CONFIG", "")
	t.Setenv("CALIBRA_DB", "")
	t.Setenv("CALIBRA_LLM_PROVIDER", "")
	t.Setenv("CALIBRA_LOG_LEVEL", "error")
	return filepath.Join(dir, "calibra.db")
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestCLI_AssessAndMetrics(t *testing.T) {
	db := isolate(t)

	out, err := execute(t, "--db", db, "-u", "learner-1", "assess",
		"--prompt", "p1", "--objective", "cardio-acs-ecg", "--confidence", "5", "--score", "0")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Overconfident")

	out, err = execute(t, "--db", db, "-u", "learner-1", "--json", "metrics")
	require.NoError(t, err, out)
	var m struct {
		ResponseCount      int `json:"responseCount"`
		OverconfidentCount int `json:"overconfidentCount"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &m))
	assert.Equal(t, 1, m.ResponseCount)
	assert.Equal(t, 1, m.OverconfidentCount)

	out, err = execute(t, "--db", db, "-u", "learner-2", "metrics")
	require.NoError(t, err, out)
	assert.Contains(t, out, "No assessments recorded yet.")
}

func TestCLI_AssessRejectsBadConfidence(t *testing.T) {
	db := isolate(t)
	_, err := execute(t, "--db", db, "-u", "learner-1", "assess",
		"--prompt", "p1", "--objective", "cardio-acs-ecg", "--confidence", "9", "--score", "50")
	assert.Error(t, err)
}

func TestCLI_ChallengeOneShot(t *testing.T) {
	db := isolate(t)

	out, err := execute(t, "--db", db, "challenge", "list")
	require.NoError(t, err, out)
	assert.Contains(t, out, "renal-aki")

	out, err = execute(t, "--db", db, "-u", "learner-1", "challenge", "renal-aki",
		"--answer", "a", "--confidence", "4", "--emotion", "surprised")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Incorrect.")
	assert.Contains(t, out, "Retries scheduled")

	out, err = execute(t, "--db", db, "-u", "learner-1", "challenge", "status")
	require.NoError(t, err, out)
	assert.Contains(t, out, "SCHEDULED_RETRY")

	out, err = execute(t, "--db", db, "-u", "learner-1", "challenge", "history", "renal-aki")
	require.NoError(t, err, out)
	assert.Contains(t, out, "surprised")

	out, err = execute(t, "--db", db, "-u", "learner-1", "retries")
	require.NoError(t, err, out)
	assert.Contains(t, out, "No retries due.")

	out, err = execute(t, "--db", db, "-u", "learner-1", "--json", "patterns")
	require.NoError(t, err, out)
}

func TestCLI_ChallengeUnknownObjective(t *testing.T) {
	db := isolate(t)
	_, err := execute(t, "--db", db, "-u", "learner-1", "challenge", "no-such-objective", "--answer", "a", "--confidence", "3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "calibra challenge list")
}

func TestCLI_OptInAndBenchmark(t *testing.T) {
	db := isolate(t)

	_, err := execute(t, "--db", db, "-u", "learner-1", "benchmark")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "optin on")

	out, err := execute(t, "--db", db, "-u", "learner-1", "optin", "on")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Peer comparison: on")

	out, err = execute(t, "--db", db, "pool", "show")
	require.NoError(t, err, out)
	assert.Contains(t, out, "No pool snapshot yet.")

	_, err = execute(t, "--db", db, "-u", "learner-1", "benchmark")
	assert.Error(t, err, "pool is below the minimum size")

	out, err = execute(t, "--db", db, "pool", "show")
	require.NoError(t, err, out)
	assert.Contains(t, out, "below the minimum size", "the benchmark persisted the pool it computed")
}

func TestCLI_Version(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "calibra")
}
