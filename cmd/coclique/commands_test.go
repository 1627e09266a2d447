package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/coclique/coclique"
	"github.com/katalvlaran/coclique/graphfile"
)

const fixture = `vertices: ["1", "2", "3", "4"]
edges:
  - ["1", "2"]
  - ["3", "4"]
`

func writeFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fixture), 0o600))

	return path
}

// run executes the CLI in-process and returns stdout, stderr and the error.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())

	return stdout.String(), stderr.String(), err
}

func TestCheck(t *testing.T) {
	path := writeFixture(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"independent pair", []string{"check", "1", "3"}, "true"},
		{"adjacent pair", []string{"check", "1", "2"}, "false"},
		{"empty set", []string{"check"}, "true"},
		{"sized with adjacent pair", []string{"check", "--size", "3", "1", "3", "4"}, "false"},
		{"sized mismatch", []string{"check", "--size", "3", "1", "3"}, "false"},
		{"sized match", []string{"check", "-n", "2", "1", "3"}, "true"},
		{"concurrent", []string{"check", "--workers", "2", "1", "3"}, "true"},
		{"concurrent adjacent", []string{"check", "-w", "3", "2", "3", "4"}, "false"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, _, err := run(t, append([]string{"--graph", path}, tc.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, strings.TrimSpace(out))
		})
	}
}

func TestCheck_InvalidVertex(t *testing.T) {
	path := writeFixture(t)
	_, _, err := run(t, "--graph", path, "check", "1", "9")
	require.ErrorIs(t, err, coclique.ErrInvalidVertex)
}

func TestEnumerate(t *testing.T) {
	path := writeFixture(t)
	out, stderr, err := run(t, "-g", path, "--log-level", "info", "enumerate", "--size", "2")
	require.NoError(t, err)
	assert.Equal(t, "{1, 3}\n{1, 4}\n{2, 3}\n{2, 4}\n", out)
	assert.Contains(t, stderr, "enumeration finished")
	assert.Contains(t, stderr, "graph loaded")
}

func TestComplement(t *testing.T) {
	path := writeFixture(t)
	out, _, err := run(t, "--graph", path, "complement")
	require.NoError(t, err)

	g, err := graphfile.Load(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 4, g.EdgeCount())
	assert.False(t, g.HasEdge("1", "2"))
	assert.True(t, g.HasEdge("1", "3"))
}

func TestRoot_Errors(t *testing.T) {
	path := writeFixture(t)

	_, _, err := run(t, "check", "1")
	require.Error(t, err, "--graph is required")

	_, _, err = run(t, "--graph", filepath.Join(t.TempDir(), "nope.yaml"), "check")
	require.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = run(t, "--graph", path, "--log-level", "loud", "check")
	require.Error(t, err)

	_, _, err = run(t, "--graph", path, "check", "--size", "2", "--workers", "2", "1", "3")
	require.ErrorContains(t, err, "none of the others can be")

	_, _, err = run(t, "--graph", path, "enumerate")
	require.Error(t, err, "--size is required")

	_, _, err = run(t, "--graph", path, "enumerate", "--size", "-1")
	require.ErrorIs(t, err, coclique.ErrInvalidSize)
}
