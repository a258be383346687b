package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the ASCII art banner for automata.
func PrintBanner(w io.Writer) {
	p := termenv.ColorProfile()
	// Teal to blue gradient
	lines := []struct {
		text  string
		color string
	}{
		{"               _                        _", "#2dd4bf"},
		{"   __ _ _   _ | |_ ___  _ __ ___   __ _| |_ __ _", "#22d3ee"},
		{"  / _` | | | || __/ _ \\| '_ ` _ \\ / _` | __/ _` |", "#38bdf8"},
		{" | (_| | |_| || || (_) | | | | | | (_| | || (_| |", "#60a5fa"},
		{"  \\__,_|\\__,_| \\__\\___/|_| |_| |_|\\__,_|\\__\\__,_|", "#818cf8"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}
