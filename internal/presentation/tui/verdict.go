package tui

import (
	"github.com/aretw0/automata/pkg/domain"
	"github.com/muesli/termenv"
)

// Verdict renders a verdict in its status colour.
// Colours are dropped when the output profile does not support them.
func Verdict(v domain.Verdict) string {
	return VerdictWithProfile(termenv.ColorProfile(), v)
}

// VerdictWithProfile is Verdict for an explicit colour profile.
func VerdictWithProfile(p termenv.Profile, v domain.Verdict) string {
	color := "#9ca3af"
	switch v {
	case domain.VerdictAccepted:
		color = "#22c55e"
	case domain.VerdictRejected:
		color = "#ef4444"
	case domain.VerdictInvalid:
		color = "#f59e0b"
	}
	return termenv.String(string(v)).Foreground(p.Color(color)).Bold().String()
}
