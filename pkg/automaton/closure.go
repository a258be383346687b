package automaton

import "github.com/aretw0/automata/pkg/domain"

// Closure returns the epsilon closure of the given states.
func (m *Model) Closure(states ...domain.State) StateSet {
	return m.ClosureOf(NewStateSet(states...))
}

// ClosureOf returns the smallest superset of set closed under epsilon transitions.
// The input is not modified. Cycles are handled by never revisiting a state.
func (m *Model) ClosureOf(set StateSet) StateSet {
	result := set.Clone()
	stack := set.Sorted()
	for len(stack) > 0 {
		st := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for next := range m.relation.Destinations(st, domain.Epsilon) {
			if result.Add(next) {
				stack = append(stack, next)
			}
		}
	}
	return result
}

// step returns the closure of every destination reachable from active on sym.
// The result is empty when no member has a transition on sym.
func (m *Model) step(active StateSet, sym domain.Symbol) StateSet {
	raw := NewStateSet()
	for st := range active {
		raw.AddAll(m.relation.Destinations(st, sym))
	}
	if raw.Len() == 0 {
		return raw
	}
	return m.ClosureOf(raw)
}
