package automaton_test

import (
	"testing"

	"github.com/aretw0/automata/pkg/automaton"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestClosure(t *testing.T) {
	m := mustModel(t, sample())

	assert.Equal(t, []domain.State{"q0", "q1"}, m.Closure("q0").Sorted())
	assert.Equal(t, []domain.State{"q1"}, m.Closure("q1").Sorted())
	assert.Equal(t, 0, m.Closure().Len())
}

func TestClosure_Cycle(t *testing.T) {
	m := mustModel(t, fixtures()["epsilon_cycle"])

	assert.Equal(t, []domain.State{"p", "q", "r"}, m.Closure("p").Sorted())
	assert.Equal(t, []domain.State{"f", "p", "q", "r"}, m.Closure("f").Sorted())
}

func TestClosure_Idempotent(t *testing.T) {
	for name, def := range fixtures() {
		m := mustModel(t, def)
		for _, st := range m.States() {
			once := m.Closure(st)
			twice := m.ClosureOf(once)
			assert.True(t, once.Equal(twice), "%s: closure of %s", name, st)
		}
		all := m.Closure(m.States()...)
		assert.True(t, all.Equal(m.ClosureOf(all)), name)
	}
}

func TestClosure_DoesNotModifyInput(t *testing.T) {
	m := mustModel(t, sample())
	in := automaton.NewStateSet("q0")

	out := m.ClosureOf(in)
	assert.Equal(t, 1, in.Len())
	assert.Equal(t, 2, out.Len())
}
