// Package multi combines several definition loaders behind one ports.DefinitionLoader.
package multi

import (
	"context"
	"errors"
	"fmt"
	"sort"

	loamAdapter "github.com/aretw0/automata/pkg/adapters/loam"
	"github.com/aretw0/automata/pkg/adapters/text"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/ports"
)

// Loader consults its loaders in order.
type Loader struct {
	loaders []ports.DefinitionLoader
}

// New creates a Loader over the given loaders. Earlier loaders win on name clashes.
func New(loaders ...ports.DefinitionLoader) *Loader {
	return &Loader{loaders: loaders}
}

// Dir returns a loader for a directory holding document (YAML, JSON, Markdown)
// and text definitions. Documents win when both formats share a name.
func Dir(basePath string) (*Loader, error) {
	docs, err := loamAdapter.Open(basePath)
	if err != nil {
		return nil, err
	}
	return New(docs, text.NewLoader(basePath)), nil
}

// Load returns the definition from the first loader that knows name.
func (l *Loader) Load(ctx context.Context, name string) (*domain.Definition, error) {
	for _, loader := range l.loaders {
		def, err := loader.Load(ctx, name)
		if err == nil {
			return def, nil
		}
		if !errors.Is(err, domain.ErrAutomatonNotFound) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("%w: %q", domain.ErrAutomatonNotFound, name)
}

// List merges the names of every loader.
func (l *Loader) List(ctx context.Context) ([]string, error) {
	seen := make(map[string]bool)
	names := []string{}
	for _, loader := range l.loaders {
		list, err := loader.List(ctx)
		if err != nil {
			return nil, err
		}
		for _, name := range list {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)
	return names, nil
}
