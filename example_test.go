package automata_test

import (
	"context"
	"fmt"
	"log"

	"github.com/aretw0/automata"
	"github.com/aretw0/automata/pkg/adapters/memory"
	"github.com/aretw0/automata/pkg/automaton"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/dsl"
)

// ExampleNew_memory demonstrates the Engine with an in-memory definition.
func ExampleNew_memory() {
	loader := memory.NewLoader(map[string]domain.Definition{
		"sample": {
			Alphabet: []domain.Symbol{"a", "b", domain.Epsilon},
			States:   []domain.State{"q0", "q1", "q2"},
			Initial:  "q0",
			Finals:   []domain.State{"q2"},
			Transitions: []domain.Transition{
				{From: "q0", Label: "a", To: "q1"},
				{From: "q1", Label: "b", To: "q2"},
				{From: "q0", Label: domain.Epsilon, To: "q1"},
			},
		},
	})

	eng, err := automata.New("", automata.WithLoader(loader))
	if err != nil {
		log.Fatal(err)
	}

	report, err := eng.Run(context.Background(), "sample", []string{"ab", "b", "ac", "aa", "&"}, false)
	if err != nil {
		log.Fatal(err)
	}
	for _, res := range report.Results {
		fmt.Println(res.Word, res.Verdict)
	}
	// Output:
	// ab ACCEPTED
	// b ACCEPTED
	// ac INVALID
	// aa REJECTED
	// & REJECTED
}

// Example_determinize shows the composite states produced by subset construction.
func Example_determinize() {
	b := dsl.New("a", "b")
	b.State("q0").Initial().On("a", "q1").Epsilon("q1")
	b.State("q1").On("b", "q2")
	b.State("q2").Final()

	nfa, err := b.Build()
	if err != nil {
		log.Fatal(err)
	}
	dfa, err := automaton.Determinize(nfa)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("initial:", dfa.Initial())
	for _, t := range dfa.Transitions() {
		fmt.Println(t.From, t.Label, t.To)
	}
	// Output:
	// initial: {q0,q1}
	// {q0,q1} a {q1}
	// {q0,q1} b {q2}
	// {q1} b {q2}
}
