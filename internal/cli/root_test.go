package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the CLI with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := NewRootCommand(nil)
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestRootCommand_InvalidFormat(t *testing.T) {
	_, err := execute(t, "--format", "xml", "demo")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestRootCommand_HelpListsCommands(t *testing.T) {
	out, err := execute(t, "--help")
	require.NoError(t, err)
	for _, sub := range []string{"init", "add", "get", "set", "demo", "stress"} {
		assert.Contains(t, out, sub)
	}
}

func TestConfig_DatabasePathApplied(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "from-config.db")
	cfgPath := filepath.Join(dir, "config.yaml")
	cfg := "database:\n  path: " + dbPath + "\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))

	_, err := execute(t, "--config", cfgPath, "init")
	require.NoError(t, err)

	_, statErr := os.Stat(dbPath)
	assert.NoError(t, statErr, "init should have used the config file's database path")
}

func TestConfig_FlagOverridesFile(t *testing.T) {
	dir := t.TempDir()
	cfgDB := filepath.Join(dir, "config.db")
	flagDB := filepath.Join(dir, "flag.db")
	cfgPath := filepath.Join(dir, "config.yaml")
	cfg := "database:\n  path: " + cfgDB + "\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))

	_, err := execute(t, "--config", cfgPath, "--db", flagDB, "init")
	require.NoError(t, err)

	_, statErr := os.Stat(flagDB)
	assert.NoError(t, statErr, "explicit --db must win over the config file")
	_, statErr = os.Stat(cfgDB)
	assert.True(t, os.IsNotExist(statErr), "config path should be untouched when --db is set")
}

func TestConfig_InvalidFormatInFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("format: xml\n"), 0o644))

	_, err := execute(t, "--config", cfgPath, "demo")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestConfig_MissingFile(t *testing.T) {
	_, err := execute(t, "--config", "/nonexistent/config.yaml", "demo")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}
