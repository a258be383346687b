/*
Package dsl provides a Go DSL for constructing automata programmatically.

It lets callers describe states and transitions with a fluent builder instead of
writing text or YAML definition files. This is useful for generated automata, tests,
and IDE autocompletion.

Example usage:

	b := dsl.New("a", "b")

	b.State("q0").Initial().
		On("a", "q1").
		Epsilon("q1")

	b.State("q1").On("b", "q2")

	b.State("q2").Final()

	model, err := b.Build()
	// ... evaluate words with automaton.Evaluate(model, "ab")

The epsilon marker is always part of the alphabet; callers only list consumable symbols.
*/
package dsl
