package automaton_test

import (
	"errors"
	"testing"

	"github.com/aretw0/automata/pkg/automaton"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sample is the scenario automaton: q0-a->q1, q1-b->q2, q0-&->q1.
func sample() domain.Definition {
	return domain.Definition{
		Alphabet: []domain.Symbol{"a", "b", domain.Epsilon},
		States:   []domain.State{"q0", "q1", "q2"},
		Initial:  "q0",
		Finals:   []domain.State{"q2"},
		Transitions: []domain.Transition{
			{From: "q0", Label: "a", To: "q1"},
			{From: "q1", Label: "b", To: "q2"},
			{From: "q0", Label: domain.Epsilon, To: "q1"},
		},
	}
}

func mustModel(t *testing.T, def domain.Definition) *automaton.Model {
	t.Helper()
	m, err := automaton.New(def)
	require.NoError(t, err)
	return m
}

func TestNew_Queries(t *testing.T) {
	m := mustModel(t, sample())

	assert.Equal(t, domain.State("q0"), m.Initial())
	assert.Equal(t, []domain.Symbol{"a", "b", domain.Epsilon}, m.Alphabet())
	assert.Equal(t, []domain.Symbol{"a", "b"}, m.Symbols())
	assert.True(t, m.HasSymbol("a"))
	assert.False(t, m.HasSymbol(domain.Epsilon), "epsilon is not consumable")
	assert.True(t, m.IsState("q1"))
	assert.False(t, m.IsState("q9"))
	assert.True(t, m.IsFinal("q2"))
	assert.False(t, m.IsFinal("q0"))
	assert.Equal(t, []domain.State{"q1"}, m.Destinations("q0", "a").Sorted())
	assert.Equal(t, 0, m.Destinations("q2", "a").Len())
	assert.False(t, m.IsDeterministic())
	assert.Nil(t, m.Members("q0"))
	assert.Len(t, m.Transitions(), 3)
}

func TestNew_DestinationsAreCopies(t *testing.T) {
	m := mustModel(t, sample())

	dst := m.Destinations("q0", "a")
	dst.Add("q2")

	assert.Equal(t, []domain.State{"q1"}, m.Destinations("q0", "a").Sorted())
}

func TestNew_DuplicateTransitionsCollapse(t *testing.T) {
	def := sample()
	def.Transitions = append(def.Transitions, domain.Transition{From: "q0", Label: "a", To: "q1"})

	m := mustModel(t, def)
	assert.Len(t, m.Transitions(), 3)
}

func TestNew_DefinitionRoundTrip(t *testing.T) {
	m := mustModel(t, sample())
	again := mustModel(t, m.Definition())

	assert.Equal(t, m.Definition(), again.Definition())
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.Definition)
		kind   error
		token  string
	}{
		{
			name:   "empty alphabet",
			mutate: func(d *domain.Definition) { d.Alphabet = nil },
			kind:   domain.ErrInvalidAlphabet,
		},
		{
			name:   "missing epsilon",
			mutate: func(d *domain.Definition) { d.Alphabet = []domain.Symbol{"a", "b"} },
			kind:   domain.ErrInvalidAlphabet,
			token:  "&",
		},
		{
			name:   "unknown initial",
			mutate: func(d *domain.Definition) { d.Initial = "q9" },
			kind:   domain.ErrInvalidInitialState,
			token:  "q9",
		},
		{
			name:   "unknown final",
			mutate: func(d *domain.Definition) { d.Finals = []domain.State{"q2", "qx"} },
			kind:   domain.ErrInvalidFinalState,
			token:  "qx",
		},
		{
			name: "unknown origin",
			mutate: func(d *domain.Definition) {
				d.Transitions = append(d.Transitions, domain.Transition{From: "z", Label: "a", To: "q0"})
			},
			kind:  domain.ErrUnknownState,
			token: "z",
		},
		{
			name: "unknown label",
			mutate: func(d *domain.Definition) {
				d.Transitions = append(d.Transitions, domain.Transition{From: "q0", Label: "c", To: "q0"})
			},
			kind:  domain.ErrUnknownSymbol,
			token: "c",
		},
		{
			name: "unknown destination",
			mutate: func(d *domain.Definition) {
				d.Transitions = append(d.Transitions, domain.Transition{From: "q0", Label: "a", To: "z"})
			},
			kind:  domain.ErrUnknownState,
			token: "z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := sample()
			tt.mutate(&def)

			m, err := automaton.New(def)
			require.Error(t, err)
			assert.Nil(t, m, "no partially constructed model")
			assert.ErrorIs(t, err, tt.kind)

			var derr *domain.Error
			require.True(t, errors.As(err, &derr))
			assert.Equal(t, tt.token, derr.Token)
		})
	}
}

func TestNew_ValidationOrder(t *testing.T) {
	// Both initial and a transition are broken: the initial state is reported first.
	def := sample()
	def.Initial = "nope"
	def.Transitions = append(def.Transitions, domain.Transition{From: "q0", Label: "zz", To: "q0"})

	_, err := automaton.New(def)
	assert.ErrorIs(t, err, domain.ErrInvalidInitialState)

	// Origin is checked before label.
	def = sample()
	def.Transitions = []domain.Transition{{From: "x", Label: "zz", To: "y"}}

	_, err = automaton.New(def)
	assert.ErrorIs(t, err, domain.ErrUnknownState)

	var derr *domain.Error
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, 1, derr.Index)
	assert.Equal(t, "origin", derr.Detail)
}

func TestNew_SpecializedStateErrors(t *testing.T) {
	def := sample()
	def.Initial = "q9"
	_, err := automaton.New(def)
	assert.ErrorIs(t, err, domain.ErrUnknownState, "initial errors are unknown-state errors too")

	def = sample()
	def.Alphabet = []domain.Symbol{"a"}
	_, err = automaton.New(def)
	assert.ErrorIs(t, err, domain.ErrFormat, "alphabet errors are format errors")
}

func TestStateSet_KeyIsCanonical(t *testing.T) {
	a := automaton.NewStateSet("q2", "q0", "q1")
	b := automaton.NewStateSet("q1", "q2", "q0")

	assert.Equal(t, a.Key(), b.Key())
	assert.True(t, a.Equal(b))
	assert.Equal(t, "{q0,q1,q2}", a.String())

	// Labels that would collide when naively joined keep distinct keys.
	c := automaton.NewStateSet("a,b")
	d := automaton.NewStateSet("a", "b")
	assert.NotEqual(t, c.Key(), d.Key())
	assert.Equal(t, c.String(), d.String())
}
