package cli

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestDB returns a path for a fresh initialized database.
func newTestDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cli.db")
	_, err := execute(t, "--db", path, "init")
	require.NoError(t, err)
	return path
}

func TestInit_TwiceFails(t *testing.T) {
	path := newTestDB(t)

	_, err := execute(t, "--db", path, "init")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), "already initialized")
}

func TestAddGet_RoundTrip(t *testing.T) {
	path := newTestDB(t)

	out, err := execute(t, "--db", path, "add", "GOOG", "5", "600.10")
	require.NoError(t, err)
	assert.Contains(t, out, "GOOG 5 @ 600.10")

	out, err = execute(t, "--db", path, "get", "GOOG")
	require.NoError(t, err)
	assert.Equal(t, "GOOG 5 @ 600.10\n", out)
}

func TestGet_JSONFormat(t *testing.T) {
	path := newTestDB(t)
	_, err := execute(t, "--db", path, "add", "IBM", "12", "140.25")
	require.NoError(t, err)

	out, err := execute(t, "--db", path, "--format", "json", "get", "IBM")
	require.NoError(t, err)

	var resp struct {
		Status string       `json:"status"`
		Data   StockPayload `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, StockPayload{Symbol: "IBM", Quantity: 12, Price: 140.25}, resp.Data)
}

func TestGet_NotFound(t *testing.T) {
	path := newTestDB(t)

	out, err := execute(t, "--db", path, "get", "NOPE")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "NOT_FOUND")
}

func TestSet_OverwritesRow(t *testing.T) {
	path := newTestDB(t)
	_, err := execute(t, "--db", path, "add", "GOOG", "5", "600.10")
	require.NoError(t, err)

	_, err = execute(t, "--db", path, "set", "GOOG", "105", "600.10")
	require.NoError(t, err)

	out, err := execute(t, "--db", path, "get", "GOOG")
	require.NoError(t, err)
	assert.Equal(t, "GOOG 105 @ 600.10\n", out)
}

func TestSet_AbsentKeyIsSilentNoOp(t *testing.T) {
	path := newTestDB(t)

	// Succeeds without creating a row
	_, err := execute(t, "--db", path, "set", "GHOST", "9", "9.99")
	require.NoError(t, err)

	_, err = execute(t, "--db", path, "get", "GHOST")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestAdd_InvalidQuantity(t *testing.T) {
	path := newTestDB(t)

	_, err := execute(t, "--db", path, "add", "GOOG", "five", "600.10")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "invalid quantity")
}

func TestAdd_UninitializedDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bare.db")

	_, err := execute(t, "--db", path, "add", "GOOG", "5", "600.10")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestStress_SmallRun(t *testing.T) {
	out, err := execute(t, "stress", "--workers", "2", "--inserts", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "all verified")
}

func TestStress_RejectsZeroWorkers(t *testing.T) {
	_, err := execute(t, "stress", "--workers", "0")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
