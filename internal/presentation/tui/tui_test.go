package tui

import (
	"bytes"
	"testing"

	"github.com/aretw0/automata/pkg/domain"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerdictWithProfile_Ascii(t *testing.T) {
	for _, v := range []domain.Verdict{domain.VerdictAccepted, domain.VerdictRejected, domain.VerdictInvalid} {
		assert.Equal(t, string(v), VerdictWithProfile(termenv.Ascii, v))
	}
}

func TestVerdictWithProfile_Colored(t *testing.T) {
	got := VerdictWithProfile(termenv.TrueColor, domain.VerdictAccepted)
	assert.Contains(t, got, "ACCEPTED")
	assert.NotEqual(t, "ACCEPTED", got)
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf)
	assert.Contains(t, buf.String(), "|_| |_| |_|")
}

func TestNewRenderer(t *testing.T) {
	render := NewRenderer()
	out, err := render("# Report\n\n| word | verdict |\n|---|---|\n| ab | ACCEPTED |\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Report")
	assert.Contains(t, out, "ACCEPTED")
}
