package ports

import (
	"context"

	"github.com/aretw0/automata/pkg/automaton"
	"github.com/aretw0/automata/pkg/domain"
)

// Engine is the surface driven by adapters (HTTP, MCP, CLI).
type Engine interface {
	// List returns the names of available automata.
	List(ctx context.Context) ([]string, error)

	// Compile loads and validates the named automaton, determinizing it when deterministic is set.
	Compile(ctx context.Context, name string, deterministic bool) (*automaton.Model, error)

	// Run evaluates words against the named automaton and returns the report.
	Run(ctx context.Context, name string, words []string, deterministic bool) (*domain.Report, error)

	// Report retrieves a previously stored report.
	Report(ctx context.Context, id string) (*domain.Report, error)
}
