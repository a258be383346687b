/*
Package automata evaluates words against finite automata with epsilon transitions
and converts them into equivalent deterministic automata.

The core lives in pkg/automaton: a validated, immutable Model, epsilon closure,
subset construction (Determinize) and an Evaluator that classifies each word as
ACCEPTED, REJECTED or INVALID. This package wraps the core in an Engine that loads
definitions by name, evaluates batches concurrently and optionally stores reports.

# Definitions

Automata are described in a line-oriented text format:

	a b &
	q0 q1 q2
	q0
	q2
	q0 a q1
	q1 b q2
	q0 & q1

Line 1 is the alphabet (it must contain the epsilon marker "&"), line 2 the states,
line 3 the initial state, line 4 the final states and every further line one
transition. YAML definitions with the same fields are also supported.

# Usage

	eng, err := automata.New("./automata")
	if err != nil {
		log.Fatal(err)
	}

	report, err := eng.Run(ctx, "sample", []string{"ab", "b", "ac"}, false)
	if err != nil {
		log.Fatal(err)
	}
	for _, res := range report.Results {
		fmt.Println(res.Word, res.Verdict)
	}

Pass true as the last argument of Run to evaluate against the determinized automaton.
The verdicts are identical; only the work per symbol differs.
*/
package automata
