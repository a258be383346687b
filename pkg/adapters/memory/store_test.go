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

func TestInMemoryStore_Contract(t *testing.T) {
	ports.RunReportStoreContract(t, memory.NewStore())
}

func TestInMemoryStore_TraceIsolation(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	report := &domain.Report{
		ID: "r1",
		Results: []domain.Result{{
			Word:    "a",
			Verdict: domain.VerdictRejected,
			Trace:   []domain.Step{{Active: []domain.State{"q0", "q1"}}, {Symbol: "a", Active: []domain.State{"q1"}}},
		}},
	}
	require.NoError(t, store.Save(ctx, report))

	report.Results[0].Trace[0].Active[0] = "mutated"

	loaded, err := store.Load(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, []domain.State{"q0", "q1"}, loaded.Results[0].Trace[0].Active)

	loaded.Results[0].Trace[1].Active[0] = "mutated"
	again, err := store.Load(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, []domain.State{"q1"}, again.Results[0].Trace[1].Active)
}
