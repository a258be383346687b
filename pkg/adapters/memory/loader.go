package memory

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"sync"

	"github.com/aretw0/automata/pkg/domain"
)

// Loader implements ports.DefinitionLoader using an in-memory map.
// Safe for concurrent use.
type Loader struct {
	defs map[string]domain.Definition
	mu   sync.RWMutex
}

// NewLoader creates a Loader seeded with the given definitions.
func NewLoader(defs map[string]domain.Definition) *Loader {
	l := &Loader{defs: make(map[string]domain.Definition, len(defs))}
	for name, def := range defs {
		l.defs[name] = clone(def)
	}
	return l
}

// Put registers or replaces a definition.
func (l *Loader) Put(name string, def domain.Definition) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.defs[name] = clone(def)
}

// Load returns a copy of the named definition.
func (l *Loader) Load(ctx context.Context, name string) (*domain.Definition, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	def, ok := l.defs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrAutomatonNotFound, name)
	}
	c := clone(def)
	return &c, nil
}

// List returns all registered names.
func (l *Loader) List(ctx context.Context) ([]string, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	names := make([]string, 0, len(l.defs))
	for name := range l.defs {
		names = append(names, name)
	}
	sort.Strings(names) // Deterministic order
	return names, nil
}

func clone(def domain.Definition) domain.Definition {
	return domain.Definition{
		Alphabet:    slices.Clone(def.Alphabet),
		States:      slices.Clone(def.States),
		Initial:     def.Initial,
		Finals:      slices.Clone(def.Finals),
		Transitions: slices.Clone(def.Transitions),
	}
}
