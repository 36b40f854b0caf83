package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the command tree with args and captures stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	// flags are package-level; reset between runs
	flagConfig = ""
	flagVerbose = false

	var buf bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "patterns v0.1.0\n", out)
}

func TestListCmd(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)

	assert.Contains(t, out, "creational:\n  simple-factory\n")
	assert.Contains(t, out, "structural:\n  adapter\n")
	assert.Contains(t, out, "behavioral:\n  chain\n")
	assert.Contains(t, out, "  visitor\n")
}

func TestRunCmd(t *testing.T) {
	t.Run("named demos", func(t *testing.T) {
		out, err := execute(t, "run", "proxy", "facade")
		require.NoError(t, err)
		assert.Contains(t, out, "--- proxy (structural)")
		assert.Contains(t, out, "here is the cash")
		assert.Contains(t, out, "mix video and audio")
	})

	t.Run("unknown demo", func(t *testing.T) {
		_, err := execute(t, "run", "nope")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "demo not found")
	})

	t.Run("family", func(t *testing.T) {
		out, err := execute(t, "run", "--family", "creational")
		require.NoError(t, err)
		assert.Contains(t, out, "--- singleton (creational)")
		assert.NotContains(t, out, "--- adapter")
	})

	t.Run("unknown family", func(t *testing.T) {
		_, err := execute(t, "run", "--family", "imaginary")
		require.Error(t, err)
	})

	t.Run("family combined with names", func(t *testing.T) {
		_, err := execute(t, "run", "--family", "creational", "proxy")
		require.Error(t, err)
	})
}

func TestRunCmdWithConfig(t *testing.T) {
	dir := t.TempDir()

	t.Run("sqlite history backend", func(t *testing.T) {
		cfgPath := filepath.Join(dir, "patterns.yaml")
		dbPath := filepath.Join(dir, "history.db")
		cfg := "history:\n  backend: sqlite\n  path: " + dbPath + "\n"
		require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))

		out, err := execute(t, "run", "memento", "--config", cfgPath)
		require.NoError(t, err)
		assert.Contains(t, out, "play : 0")

		_, err = os.Stat(dbPath)
		assert.NoError(t, err, "sqlite history file should exist")
	})

	t.Run("unknown backend", func(t *testing.T) {
		cfgPath := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(cfgPath, []byte("history:\n  backend: postgres\n"), 0o644))

		_, err := execute(t, "run", "memento", "--config", cfgPath)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown history backend")
	})

	t.Run("missing explicit config file", func(t *testing.T) {
		_, err := execute(t, "run", "proxy", "--config", filepath.Join(dir, "nope.yaml"))
		require.Error(t, err)
	})
}
