package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/spf13/cobra"
)

var testDataset = filepath.Join("..", "..", "testdata", "dinosaurs.cue")

// runCommand executes a subcommand built by newCmd and returns its stdout.
func runCommand(t *testing.T, format string, newCmd func(*RootOptions) *cobra.Command, args ...string) (string, error) {
	t.Helper()

	buf := &bytes.Buffer{}
	cmd := newCmd(&RootOptions{Format: format})
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

// assertGolden compares output against testdata/golden/{name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/cli -update
func assertGolden(t *testing.T, name, output string) {
	t.Helper()
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, []byte(output))
}
