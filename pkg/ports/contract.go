package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/automata/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunReportStoreContract runs a suite of tests to verify that a ReportStore implementation
// adheres to the defined interface contract.
func RunReportStoreContract(t *testing.T, store ReportStore) {
	ctx := context.Background()
	reportID := "contract-test-report-" + time.Now().Format("20060102150405")

	newReport := func(id string) *domain.Report {
		return &domain.Report{
			ID:            id,
			Automaton:     "sample",
			Deterministic: true,
			CreatedAt:     time.Now().UTC().Truncate(time.Second),
			Results: []domain.Result{
				{Word: "ab", Verdict: domain.VerdictAccepted},
				{Word: "ac", Verdict: domain.VerdictInvalid, Reason: `symbol "c" is not in the alphabet`},
			},
		}
	}

	t.Run("Save and Load", func(t *testing.T) {
		report := newReport(reportID)

		err := store.Save(ctx, report)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, reportID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, report.Automaton, loaded.Automaton)
		assert.True(t, loaded.Deterministic)
		assert.True(t, report.CreatedAt.Equal(loaded.CreatedAt))
		require.Len(t, loaded.Results, 2)
		assert.Equal(t, domain.VerdictInvalid, loaded.Results[1].Verdict)
		assert.Equal(t, report.Results[1].Reason, loaded.Results[1].Reason)
	})

	t.Run("Load returns a copy", func(t *testing.T) {
		loaded, err := store.Load(ctx, reportID)
		require.NoError(t, err)
		loaded.Results[0].Verdict = domain.VerdictRejected

		again, err := store.Load(ctx, reportID)
		require.NoError(t, err)
		assert.Equal(t, domain.VerdictAccepted, again.Results[0].Verdict)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+reportID)
		assert.ErrorIs(t, err, domain.ErrReportNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		err := store.Save(ctx, newReport(reportID))
		require.NoError(t, err)

		err = store.Delete(ctx, reportID)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, reportID)
		assert.ErrorIs(t, err, domain.ErrReportNotFound, "Load after Delete should return ErrReportNotFound")

		assert.NoError(t, store.Delete(ctx, reportID), "Delete of a missing report is not an error")
	})

	t.Run("List", func(t *testing.T) {
		id1 := reportID + "-1"
		id2 := reportID + "-2"
		require.NoError(t, store.Save(ctx, newReport(id1)))
		require.NoError(t, store.Save(ctx, newReport(id2)))

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		ids, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, ids, id1)
		assert.Contains(t, ids, id2)
	})
}

// RunDefinitionLoaderContract verifies a DefinitionLoader against the definitions it was seeded with.
func RunDefinitionLoaderContract(t *testing.T, loader DefinitionLoader, seeded map[string]domain.Definition) {
	t.Helper()
	ctx := context.Background()

	t.Run("Load", func(t *testing.T) {
		for name, want := range seeded {
			got, err := loader.Load(ctx, name)
			require.NoError(t, err, name)
			assert.Equal(t, want.Initial, got.Initial, name)
			assert.ElementsMatch(t, want.Alphabet, got.Alphabet, name)
			assert.ElementsMatch(t, want.States, got.States, name)
			assert.ElementsMatch(t, want.Finals, got.Finals, name)
			assert.ElementsMatch(t, want.Transitions, got.Transitions, name)
		}
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := loader.Load(ctx, "non-existent-automaton")
		assert.ErrorIs(t, err, domain.ErrAutomatonNotFound)
	})

	t.Run("List", func(t *testing.T) {
		names, err := loader.List(ctx)
		require.NoError(t, err)
		for name := range seeded {
			assert.Contains(t, names, name)
		}
		assert.IsNonDecreasing(t, names)
	})
}
