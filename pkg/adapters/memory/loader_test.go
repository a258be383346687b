package memory_test

import (
	"context"
	"testing"

	"github.com/aretw0/automata/pkg/adapters/memory"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

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

func TestInMemoryLoader_Contract(t *testing.T) {
	seeded := map[string]domain.Definition{"sample": sample()}
	ports.RunDefinitionLoaderContract(t, memory.NewLoader(seeded), seeded)
}

func TestInMemoryLoader_Isolation(t *testing.T) {
	loader := memory.NewLoader(map[string]domain.Definition{"sample": sample()})

	def, err := loader.Load(context.Background(), "sample")
	require.NoError(t, err)
	def.States[0] = "mutated"

	again, err := loader.Load(context.Background(), "sample")
	require.NoError(t, err)
	assert.Equal(t, domain.State("q0"), again.States[0])
}

func TestInMemoryLoader_Put(t *testing.T) {
	loader := memory.NewLoader(nil)
	loader.Put("b", sample())
	loader.Put("a", sample())

	names, err := loader.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names)
}
