package dsl

import (
	"fmt"

	"github.com/aretw0/automata/pkg/adapters/memory"
	"github.com/aretw0/automata/pkg/automaton"
	"github.com/aretw0/automata/pkg/domain"
)

// Builder manages the automaton construction.
type Builder struct {
	alphabet []domain.Symbol
	states   map[domain.State]*StateBuilder
	order    []domain.State
	initial  domain.State
}

// New creates a new builder over the given consumable symbols.
func New(symbols ...domain.Symbol) *Builder {
	b := &Builder{
		states: make(map[domain.State]*StateBuilder),
	}
	for _, s := range symbols {
		if !s.IsEpsilon() {
			b.alphabet = append(b.alphabet, s)
		}
	}
	b.alphabet = append(b.alphabet, domain.Epsilon)
	return b
}

// State declares a state.
// If the state already exists, it returns the existing builder.
func (b *Builder) State(name domain.State) *StateBuilder {
	if sb, ok := b.states[name]; ok {
		return sb
	}
	sb := &StateBuilder{name: name, builder: b}
	b.states[name] = sb
	b.order = append(b.order, name)
	return sb
}

// Definition assembles the raw definition in declaration order.
// States referenced only as transition targets are declared implicitly.
func (b *Builder) Definition() domain.Definition {
	def := domain.Definition{
		Alphabet: append([]domain.Symbol(nil), b.alphabet...),
		Initial:  b.initial,
	}

	declared := make(map[domain.State]bool, len(b.order))
	declare := func(s domain.State) {
		if !declared[s] {
			declared[s] = true
			def.States = append(def.States, s)
		}
	}

	for _, name := range b.order {
		declare(name)
	}
	for _, name := range b.order {
		sb := b.states[name]
		if sb.final {
			def.Finals = append(def.Finals, name)
		}
		for _, t := range sb.transitions {
			declare(t.To)
			def.Transitions = append(def.Transitions, t)
		}
	}
	return def
}

// Build validates the definition and compiles it into a Model.
func (b *Builder) Build() (*automaton.Model, error) {
	m, err := automaton.New(b.Definition())
	if err != nil {
		return nil, fmt.Errorf("failed to build automaton: %w", err)
	}
	return m, nil
}

// Loader validates the definition and exposes it under name through an in-memory loader.
func (b *Builder) Loader(name string) (*memory.Loader, error) {
	def := b.Definition()
	if _, err := automaton.New(def); err != nil {
		return nil, fmt.Errorf("failed to build memory loader: %w", err)
	}
	return memory.NewLoader(map[string]domain.Definition{name: def}), nil
}
