package automaton_test

import (
	"context"
	"sync"
	"testing"

	"github.com/aretw0/automata/pkg/automaton"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate_Scenarios(t *testing.T) {
	m := mustModel(t, sample())

	tests := []struct {
		word string
		want domain.Verdict
	}{
		{"ab", domain.VerdictAccepted},
		{"b", domain.VerdictAccepted}, // closure(q0) = {q0,q1}
		{"ac", domain.VerdictInvalid},
		{"aa", domain.VerdictRejected},
		{"&", domain.VerdictRejected},
		{"", domain.VerdictRejected},
		{"a&b", domain.VerdictInvalid},
		{"abb", domain.VerdictRejected},
		{"a", domain.VerdictRejected},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			res := automaton.Evaluate(m, tt.word)
			assert.Equal(t, tt.want, res.Verdict)
			assert.Equal(t, tt.word, res.Word)
		})
	}
}

func TestEvaluate_InvalidCarriesError(t *testing.T) {
	m := mustModel(t, sample())

	res := automaton.Evaluate(m, "ac")
	require.Equal(t, domain.VerdictInvalid, res.Verdict)
	assert.ErrorIs(t, res.Err, domain.ErrInvalidWordSymbol)
	assert.Contains(t, res.Reason, `"c"`)
}

func TestEvaluate_InvalidSkipsSimulation(t *testing.T) {
	m := mustModel(t, sample())
	steps := 0
	ev := automaton.NewEvaluator(m, automaton.WithHooks(domain.EvaluationHooks{
		OnStep: func(context.Context, *domain.StepEvent) { steps++ },
	}))

	res := ev.Evaluate(context.Background(), "abc")
	assert.Equal(t, domain.VerdictInvalid, res.Verdict)
	assert.Zero(t, steps)
}

func TestEvaluate_EmptyWordAccepted(t *testing.T) {
	def := sample()
	def.Finals = []domain.State{"q1"} // reachable from q0 by epsilon only
	m := mustModel(t, def)

	assert.Equal(t, domain.VerdictAccepted, automaton.Evaluate(m, "&").Verdict)
	assert.Equal(t, domain.VerdictAccepted, automaton.Evaluate(m, "").Verdict)
}

func TestEvaluate_ShortCircuits(t *testing.T) {
	m := mustModel(t, sample())
	var seen []domain.Symbol
	ev := automaton.NewEvaluator(m, automaton.WithHooks(domain.EvaluationHooks{
		OnStep: func(_ context.Context, e *domain.StepEvent) { seen = append(seen, e.Symbol) },
	}))

	res := ev.Evaluate(context.Background(), "aaab")
	assert.Equal(t, domain.VerdictRejected, res.Verdict)
	assert.Equal(t, []domain.Symbol{"a", "a"}, seen, "stops at the first empty step")
}

func TestEvaluate_ExploresAllBranches(t *testing.T) {
	// q0 has two a-successors; only the second leads to acceptance.
	// Picking the first destination only would reject "ab".
	m := mustModel(t, domain.Definition{
		Alphabet: []domain.Symbol{"a", "b", domain.Epsilon},
		States:   []domain.State{"q0", "dead", "q1", "q2"},
		Initial:  "q0",
		Finals:   []domain.State{"q2"},
		Transitions: []domain.Transition{
			{From: "q0", Label: "a", To: "dead"},
			{From: "q0", Label: "a", To: "q1"},
			{From: "q1", Label: "b", To: "q2"},
		},
	})

	assert.Equal(t, domain.VerdictAccepted, automaton.Evaluate(m, "ab").Verdict)
}

func TestEvaluate_Trace(t *testing.T) {
	m := mustModel(t, sample())
	ev := automaton.NewEvaluator(m, automaton.WithTrace(true))

	res := ev.Evaluate(context.Background(), "ab")
	require.Len(t, res.Trace, 3)
	assert.Equal(t, []domain.State{"q0", "q1"}, res.Trace[0].Active)
	assert.Equal(t, domain.Symbol("a"), res.Trace[1].Symbol)
	assert.Equal(t, []domain.State{"q1"}, res.Trace[1].Active)
	assert.Equal(t, []domain.State{"q2"}, res.Trace[2].Active)

	plain := automaton.Evaluate(m, "ab")
	assert.Empty(t, plain.Trace)
	assert.Equal(t, plain.Verdict, res.Verdict)
}

func TestEvaluate_Hooks(t *testing.T) {
	m := mustModel(t, sample())
	var started, finished []string
	var verdict domain.Verdict
	var steps int

	ev := automaton.NewEvaluator(m,
		automaton.WithName("sample"),
		automaton.WithHooks(domain.EvaluationHooks{
			OnWordStart: func(_ context.Context, e *domain.WordEvent) {
				started = append(started, e.Word)
				assert.Equal(t, "sample", e.Automaton)
			},
			OnVerdict: func(_ context.Context, e *domain.WordEvent) {
				finished = append(finished, e.Word)
				verdict = e.Verdict
				steps = e.Steps
			},
		}),
	)

	ev.Evaluate(context.Background(), "ab")
	assert.Equal(t, []string{"ab"}, started)
	assert.Equal(t, []string{"ab"}, finished)
	assert.Equal(t, domain.VerdictAccepted, verdict)
	assert.Equal(t, 2, steps)
}

func TestEvaluateSymbols_MultiCharacterAlphabet(t *testing.T) {
	m := mustModel(t, domain.Definition{
		Alphabet: []domain.Symbol{"open", "close", domain.Epsilon},
		States:   []domain.State{"idle", "busy"},
		Initial:  "idle",
		Finals:   []domain.State{"idle"},
		Transitions: []domain.Transition{
			{From: "idle", Label: "open", To: "busy"},
			{From: "busy", Label: "close", To: "idle"},
		},
	})
	ev := automaton.NewEvaluator(m)
	ctx := context.Background()

	res := ev.EvaluateSymbols(ctx, "open close", []domain.Symbol{"open", "close"})
	assert.Equal(t, domain.VerdictAccepted, res.Verdict)

	res = ev.EvaluateSymbols(ctx, "open", []domain.Symbol{"open"})
	assert.Equal(t, domain.VerdictRejected, res.Verdict)

	res = ev.EvaluateSymbols(ctx, "&", []domain.Symbol{domain.Epsilon})
	assert.Equal(t, domain.VerdictAccepted, res.Verdict)
}

func TestEvaluate_ConcurrentReaders(t *testing.T) {
	m := mustModel(t, sample())
	dfa, err := automaton.Determinize(m)
	require.NoError(t, err)

	words := []string{"ab", "b", "ac", "aa", "&"}
	want := make([]domain.Verdict, len(words))
	for i, w := range words {
		want[i] = automaton.Evaluate(m, w).Verdict
	}

	var wg sync.WaitGroup
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, w := range words {
				assert.Equal(t, want[i], automaton.Evaluate(m, w).Verdict)
				assert.Equal(t, want[i], automaton.Evaluate(dfa, w).Verdict)
			}
		}()
	}
	wg.Wait()
}

func TestTokenize(t *testing.T) {
	assert.Nil(t, automaton.Tokenize(""))
	assert.Nil(t, automaton.Tokenize("&"))
	assert.Equal(t, []domain.Symbol{"a", "b"}, automaton.Tokenize("ab"))
	assert.Equal(t, []domain.Symbol{"ç", "a"}, automaton.Tokenize("ça"))
}
