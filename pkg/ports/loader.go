package ports

import (
	"context"

	"github.com/aretw0/automata/pkg/domain"
)

// DefinitionLoader defines how the engine retrieves automaton definitions.
// This allows the source (text files, YAML, Memory) to be decoupled.
type DefinitionLoader interface {
	// Load returns the raw definition stored under name.
	// Returns domain.ErrAutomatonNotFound if no such definition exists.
	// The definition is not validated; automaton.New does that.
	Load(ctx context.Context, name string) (*domain.Definition, error)

	// List returns the names of all available definitions, sorted.
	List(ctx context.Context) ([]string, error)
}
