package automaton

import (
	"slices"

	"github.com/aretw0/automata/pkg/domain"
)

// Model is an immutable, validated finite automaton.
type Model struct {
	alphabet []domain.Symbol // declaration order, includes Epsilon
	symbols  map[domain.Symbol]struct{}
	states   []domain.State
	declared StateSet
	initial  domain.State
	finals   StateSet
	relation *Relation

	// members maps composite states to their source states (determinized models only).
	members map[domain.State]StateSet
}

// New validates def and builds a Model.
//
// Validation order: alphabet (nonempty, contains Epsilon), initial state,
// final states, then each transition's origin, label and destination.
// The first violation is returned as a *domain.Error; no model is returned.
func New(def domain.Definition) (*Model, error) {
	m := &Model{
		symbols:  make(map[domain.Symbol]struct{}),
		declared: NewStateSet(),
		finals:   NewStateSet(),
		relation: newRelation(),
	}

	hasEpsilon := false
	for _, sym := range def.Alphabet {
		if sym.IsEpsilon() {
			if !hasEpsilon {
				m.alphabet = append(m.alphabet, sym)
			}
			hasEpsilon = true
			continue
		}
		if _, dup := m.symbols[sym]; dup {
			continue
		}
		m.symbols[sym] = struct{}{}
		m.alphabet = append(m.alphabet, sym)
	}
	if len(def.Alphabet) == 0 {
		return nil, &domain.Error{Kind: domain.ErrInvalidAlphabet, Detail: "alphabet is empty"}
	}
	if !hasEpsilon {
		return nil, &domain.Error{Kind: domain.ErrInvalidAlphabet, Token: string(domain.Epsilon), Detail: "epsilon marker is missing"}
	}

	for _, st := range def.States {
		if m.declared.Add(st) {
			m.states = append(m.states, st)
		}
	}

	if !m.declared.Has(def.Initial) {
		return nil, domain.NewError(domain.ErrInvalidInitialState, string(def.Initial))
	}
	m.initial = def.Initial

	for _, st := range def.Finals {
		if !m.declared.Has(st) {
			return nil, domain.NewError(domain.ErrInvalidFinalState, string(st))
		}
		m.finals.Add(st)
	}

	for i, t := range def.Transitions {
		if !m.declared.Has(t.From) {
			return nil, &domain.Error{Kind: domain.ErrUnknownState, Token: string(t.From), Index: i + 1, Detail: "origin"}
		}
		if !m.isLabel(t.Label) {
			return nil, &domain.Error{Kind: domain.ErrUnknownSymbol, Token: string(t.Label), Index: i + 1}
		}
		if !m.declared.Has(t.To) {
			return nil, &domain.Error{Kind: domain.ErrUnknownState, Token: string(t.To), Index: i + 1, Detail: "destination"}
		}
		m.relation.add(t.From, t.Label, t.To)
	}

	return m, nil
}

func (m *Model) isLabel(sym domain.Symbol) bool {
	return sym.IsEpsilon() || m.HasSymbol(sym)
}

// Alphabet returns the declared alphabet, including the epsilon marker.
func (m *Model) Alphabet() []domain.Symbol {
	return slices.Clone(m.alphabet)
}

// Symbols returns the consumable symbols (alphabet without epsilon) in declaration order.
func (m *Model) Symbols() []domain.Symbol {
	out := make([]domain.Symbol, 0, len(m.symbols))
	for _, sym := range m.alphabet {
		if !sym.IsEpsilon() {
			out = append(out, sym)
		}
	}
	return out
}

// HasSymbol reports whether sym is a consumable symbol. Epsilon is not.
func (m *Model) HasSymbol(sym domain.Symbol) bool {
	_, ok := m.symbols[sym]
	return ok
}

// States returns the declared states in declaration order.
func (m *Model) States() []domain.State {
	return slices.Clone(m.states)
}

// IsState reports whether st is a declared state.
func (m *Model) IsState(st domain.State) bool {
	return m.declared.Has(st)
}

// Initial returns the initial state.
func (m *Model) Initial() domain.State {
	return m.initial
}

// IsFinal reports whether st is a final state.
func (m *Model) IsFinal(st domain.State) bool {
	return m.finals.Has(st)
}

// Finals returns the final states in lexical order.
func (m *Model) Finals() []domain.State {
	return m.finals.Sorted()
}

// Destinations returns the destinations of (st, label); empty if none.
// The returned set is a copy owned by the caller.
func (m *Model) Destinations(st domain.State, label domain.Symbol) StateSet {
	dst := m.relation.Destinations(st, label)
	if dst == nil {
		return NewStateSet()
	}
	return dst.Clone()
}

// Transitions lists every transition in a stable order.
func (m *Model) Transitions() []domain.Transition {
	return m.relation.Transitions()
}

// IsDeterministic reports whether the model has no epsilon transitions and
// at most one destination per (state, symbol).
func (m *Model) IsDeterministic() bool {
	return m.relation.Deterministic()
}

// Members returns the source states a composite state stands for.
// It returns nil for models that were not produced by Determinize.
func (m *Model) Members(st domain.State) []domain.State {
	set, ok := m.members[st]
	if !ok {
		return nil
	}
	return set.Sorted()
}

// Definition converts the model back into a raw description.
func (m *Model) Definition() domain.Definition {
	return domain.Definition{
		Alphabet:    m.Alphabet(),
		States:      m.States(),
		Initial:     m.initial,
		Finals:      m.Finals(),
		Transitions: m.Transitions(),
	}
}

// accepting reports whether any member of set is final.
func (m *Model) accepting(set StateSet) bool {
	return set.Intersects(m.finals)
}
