package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/aretw0/automata/pkg/adapters/text"
	"github.com/aretw0/automata/pkg/automaton"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleText = "a b &\nq0 q1 q2\nq0\nq2\nq0 a q1\nq1 b q2\nq0 & q1\n"

func sampleModel(t *testing.T) *automaton.Model {
	t.Helper()
	m, err := text.Read(strings.NewReader(sampleText))
	require.NoError(t, err)
	return m
}

func sampleReport(t *testing.T) *domain.Report {
	t.Helper()
	ev := automaton.NewEvaluator(sampleModel(t), automaton.WithTrace(true))
	report := &domain.Report{ID: "r1", Automaton: "sample"}
	for _, w := range []string{"ab", "ac", "", "aa"} {
		report.Results = append(report.Results, ev.Evaluate(t.Context(), w))
	}
	return report
}

func TestWriteReport_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, sampleReport(t), ReportOptions{}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "ab: ACCEPTED", lines[0])
	assert.Equal(t, `ac: INVALID (symbol "c" is not in the alphabet)`, lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "&: REJECTED"))
	assert.True(t, strings.HasPrefix(lines[3], "aa: REJECTED (no transition on"))
}

func TestWriteReport_TextTrace(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, sampleReport(t), ReportOptions{Trace: true}))

	assert.Contains(t, buf.String(), "    start {q0,q1}\n    a -> {q1}\n    b -> {q2}\n")
}

func TestWriteReport_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, sampleReport(t), ReportOptions{Format: FormatJSON}))

	var decoded domain.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "r1", decoded.ID)
	assert.Equal(t, domain.VerdictInvalid, decoded.Results[1].Verdict)
}

func TestWriteReport_Markdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, sampleReport(t), ReportOptions{Format: FormatMarkdown, Trace: true}))

	md := buf.String()
	assert.Contains(t, md, "# sample (NFA)")
	assert.Contains(t, md, "**1** accepted, **2** rejected, **1** invalid")
	assert.Contains(t, md, "| `ab` | ACCEPTED |  |")
	assert.Contains(t, md, "## `ab`")
}

func TestWriteReport_UnknownFormat(t *testing.T) {
	assert.Error(t, WriteReport(&bytes.Buffer{}, sampleReport(t), ReportOptions{Format: "xml"}))
}

func TestWriteModel(t *testing.T) {
	dfa, err := automaton.Determinize(sampleModel(t))
	require.NoError(t, err)

	t.Run("text round trip", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteModel(&buf, dfa, FormatText))
		again, err := text.Read(&buf)
		require.NoError(t, err)
		assert.Equal(t, dfa.Definition(), again.Definition())
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteModel(&buf, dfa, FormatYAML))
		assert.Contains(t, buf.String(), "initial:")
		assert.Contains(t, buf.String(), "{q0,q1}")
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteModel(&buf, dfa, FormatJSON))
		assert.Contains(t, buf.String(), `"initial": "{q0,q1}"`)
	})

	t.Run("mermaid", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteModel(&buf, dfa, FormatMermaid))
		assert.Contains(t, buf.String(), "graph LR")
	})

	assert.Error(t, WriteModel(&bytes.Buffer{}, dfa, "dot"))
}

func TestSummary(t *testing.T) {
	assert.Equal(t, "sample: 3 states, 2 symbols, 3 transitions, 1 final, nondeterministic", Summary("sample", sampleModel(t)))
}
