/*
Package automaton is the finite automaton engine.

A Model is an immutable, validated automaton built from a domain.Definition.
The package computes epsilon closures, converts nondeterministic models into
deterministic ones through subset construction, and classifies words as
ACCEPTED, REJECTED or INVALID.

	m, err := automaton.New(def)
	if err != nil {
		// errors.Is(err, domain.ErrUnknownState), ...
	}
	dfa, _ := automaton.Determinize(m)
	res := automaton.Evaluate(dfa, "ab")

Models and evaluators hold no mutable state after construction and are safe for
concurrent use.
*/
package automaton
