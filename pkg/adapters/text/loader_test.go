package text_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/automata/pkg/adapters/text"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_Contract(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sample.txt"), []byte(sampleText), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.md"), []byte("ignored"), 0644))

	seeded := map[string]domain.Definition{
		"sample": {
			Alphabet: []domain.Symbol{"a", "b", "&"},
			States:   []domain.State{"q0", "q1", "q2"},
			Initial:  "q0",
			Finals:   []domain.State{"q2"},
			Transitions: []domain.Transition{
				{From: "q0", Label: "a", To: "q1"},
				{From: "q1", Label: "b", To: "q2"},
				{From: "q0", Label: "&", To: "q1"},
			},
		},
	}

	ports.RunDefinitionLoaderContract(t, text.NewLoader(dir), seeded)
}

func TestLoader_ResolvesExplicitFileName(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "automato.dat"), []byte(sampleText), 0644))

	def, err := text.NewLoader(dir).Load(context.Background(), "automato.dat")
	require.NoError(t, err)
	assert.Equal(t, domain.State("q0"), def.Initial)
}

func TestLoader_RejectsEscapingNames(t *testing.T) {
	_, err := text.NewLoader(t.TempDir()).Load(context.Background(), "../etc/passwd")
	assert.ErrorIs(t, err, domain.ErrAutomatonNotFound)
}

func TestLoader_ParseErrorsAreWrapped(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.txt"), []byte("a &\nq0\n"), 0644))

	_, err := text.NewLoader(dir).Load(context.Background(), "broken")
	assert.ErrorIs(t, err, domain.ErrFormat)
	assert.Contains(t, err.Error(), "broken")
}

func TestLoader_MissingDirectoryListsNothing(t *testing.T) {
	names, err := text.NewLoader(filepath.Join(t.TempDir(), "absent")).List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, names)
}
