package tui_test

import (
	"bytes"
	"testing"

	"github.com/aretw0/inertia/internal/presentation/tui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRendererFor_NonTerminalIsPlain(t *testing.T) {
	var buf bytes.Buffer
	render := tui.RendererFor(&buf, false)

	out, err := render("# Title")
	require.NoError(t, err)
	assert.Equal(t, "# Title", out)
	assert.False(t, tui.IsTerminal(&buf))
}

func TestNewRenderer(t *testing.T) {
	out, err := tui.NewRenderer()("# Simulation\n\n| a | b |\n|---|---|\n| 1 | 2 |\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Simulation")
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	tui.PrintBanner(&buf)
	assert.Contains(t, buf.String(), "|_|_| |_|")
	assert.Contains(t, tui.Status(true, "OK"), "OK")
}
