package dsl

import "github.com/aretw0/automata/pkg/domain"

// StateBuilder provides a fluent API for configuring a state.
type StateBuilder struct {
	name        domain.State
	final       bool
	transitions []domain.Transition
	builder     *Builder
}

// Initial marks the state as the initial state, replacing any previous one.
func (s *StateBuilder) Initial() *StateBuilder {
	s.builder.initial = s.name
	return s
}

// Final marks the state as accepting.
func (s *StateBuilder) Final() *StateBuilder {
	s.final = true
	return s
}

// On adds transitions consuming symbol to each target.
func (s *StateBuilder) On(symbol domain.Symbol, targets ...domain.State) *StateBuilder {
	for _, t := range targets {
		s.transitions = append(s.transitions, domain.Transition{From: s.name, Label: symbol, To: t})
	}
	return s
}

// Epsilon adds spontaneous transitions to each target.
func (s *StateBuilder) Epsilon(targets ...domain.State) *StateBuilder {
	return s.On(domain.Epsilon, targets...)
}

// Name returns the state label.
func (s *StateBuilder) Name() domain.State {
	return s.name
}
