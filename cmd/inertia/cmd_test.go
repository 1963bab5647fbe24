package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "inertia version")
}

func TestValidate(t *testing.T) {
	out, err := run(t, "validate", "../../pkg/scenario/testdata/dodge.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "dodge (2 bones, 90 frames, 2 events)")

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("bones: [root]\n"), 0o644))
	_, err = run(t, "validate", bad)
	assert.ErrorContains(t, err, "invalid scenario")
}

func TestSimulate(t *testing.T) {
	trace := filepath.Join(t.TempDir(), "trace.jsonl")

	out, err := run(t, "simulate", "--plain", "--jsonl", trace, "../../pkg/scenario/testdata/cut.json")
	require.NoError(t, err)
	assert.Contains(t, out, "# Simulation: cut")

	data, err := os.ReadFile(trace)
	require.NoError(t, err)
	assert.Equal(t, 30, strings.Count(string(data), "\n"))
}
