package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the ASCII art banner for inertia.
func PrintBanner(w io.Writer) {
	p := termenv.ColorProfile()
	lines := []struct {
		text  string
		color string
	}{
		{" _            _   _       ", "#7dd3fc"},
		{"(_)_ __   ___| |_(_) __ _ ", "#93c5fd"},
		{"| | '_ \\ / _ \\ __| |/ _` |", "#a5b4fc"},
		{"| | | | |  __/ |_| | (_| |", "#c4b5fd"},
		{"|_|_| |_|\\___|\\__|_|\\__,_|", "#d8b4fe"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}

// Status colors a short status word: green when ok, red otherwise.
func Status(ok bool, text string) string {
	p := termenv.ColorProfile()
	color := "#ef4444"
	if ok {
		color = "#22c55e"
	}
	return termenv.String(text).Foreground(p.Color(color)).Bold().String()
}
