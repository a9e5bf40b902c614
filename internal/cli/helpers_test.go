package cli

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/navstore/internal/sqlite"
)

// env is an isolated config and data directory pair.
type env struct {
	configDir string
	dataDir   string
}

func newEnv(t *testing.T) env {
	t.Helper()
	color.NoColor = true
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
	t.Setenv("NAVSTORE_APP_ID", "")
	t.Setenv("NAVSTORE_LOG_LEVEL", "")
	return env{configDir: t.TempDir(), dataDir: t.TempDir()}
}

// run executes navstore with the env's directories and returns stdout. The
// shared store is closed afterwards so each run starts like a new process.
func (e env) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	full := append([]string{"--config-dir", e.configDir, "--data-dir", e.dataDir, "--log-level", "error"}, args...)
	return execute(t, full...)
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	require.NoError(t, sqlite.CloseShared())
	return stdout.String(), err
}

// mustRun fails the test if the command returns an error.
func (e env) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := e.run(t, args...)
	require.NoError(t, err, "navstore %v", args)
	return out
}

// runJSON runs the command with --json and decodes stdout into v.
func (e env) runJSON(t *testing.T, v any, args ...string) {
	t.Helper()
	out := e.mustRun(t, append([]string{"--json"}, args...)...)
	require.NoError(t, json.Unmarshal([]byte(out), v), "output: %s", out)
}
