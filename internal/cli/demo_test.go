package cli

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

// TestDemoGolden locks down the demo walkthrough output. Regenerate with:
//
//	go test ./internal/cli -run TestDemoGolden -update
func TestDemoGolden(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewRootCommand(nil)
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"demo"})

	require.NoError(t, cmd.Execute())

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "demo", buf.Bytes())
}
