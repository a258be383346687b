package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/automata/internal/presentation/graph"
	"github.com/aretw0/automata/internal/presentation/tui"
	"github.com/aretw0/automata/pkg/adapters/text"
	"github.com/aretw0/automata/pkg/adapters/yaml"
	"github.com/aretw0/automata/pkg/automaton"
	"github.com/aretw0/automata/pkg/domain"
)

// Output formats.
const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
	FormatYAML     = "yaml"
	FormatMermaid  = "mermaid"
)

// ReportOptions controls report rendering.
type ReportOptions struct {
	Format string
	Color  bool
	Trace  bool
}

// WriteReport renders a report in the requested format.
func WriteReport(w io.Writer, report *domain.Report, opts ReportOptions) error {
	switch opts.Format {
	case "", FormatText:
		return writeTextReport(w, report, opts)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case FormatMarkdown:
		md := MarkdownReport(report, opts.Trace)
		if opts.Color {
			rendered, err := tui.NewRenderer()(md)
			if err == nil {
				md = rendered
			}
		}
		_, err := io.WriteString(w, md)
		return err
	}
	return fmt.Errorf("unknown output format %q", opts.Format)
}

func writeTextReport(w io.Writer, report *domain.Report, opts ReportOptions) error {
	for _, res := range report.Results {
		verdict := string(res.Verdict)
		if opts.Color {
			verdict = tui.Verdict(res.Verdict)
		}
		line := fmt.Sprintf("%s: %s", displayWord(res.Word), verdict)
		if res.Reason != "" {
			line += " (" + res.Reason + ")"
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
		if opts.Trace {
			for _, step := range res.Trace {
				fmt.Fprintf(w, "    %s\n", formatStep(step))
			}
		}
	}
	return nil
}

// MarkdownReport renders a report as a markdown document.
func MarkdownReport(report *domain.Report, trace bool) string {
	var sb strings.Builder
	kind := "NFA"
	if report.Deterministic {
		kind = "DFA"
	}
	fmt.Fprintf(&sb, "# %s (%s)\n\n", report.Automaton, kind)
	if report.ID != "" {
		fmt.Fprintf(&sb, "Report `%s`\n\n", report.ID)
	}
	fmt.Fprintf(&sb, "**%d** accepted, **%d** rejected, **%d** invalid\n\n",
		report.Count(domain.VerdictAccepted),
		report.Count(domain.VerdictRejected),
		report.Count(domain.VerdictInvalid),
	)

	sb.WriteString("| Word | Verdict | Reason |\n|---|---|---|\n")
	for _, res := range report.Results {
		fmt.Fprintf(&sb, "| `%s` | %s | %s |\n", displayWord(res.Word), res.Verdict, escapeCell(res.Reason))
	}

	if trace {
		for _, res := range report.Results {
			if len(res.Trace) == 0 {
				continue
			}
			fmt.Fprintf(&sb, "\n## `%s`\n\n", displayWord(res.Word))
			for _, step := range res.Trace {
				fmt.Fprintf(&sb, "- %s\n", formatStep(step))
			}
		}
	}
	return sb.String()
}

// WriteModel exports a model in the requested format.
func WriteModel(w io.Writer, m *automaton.Model, format string) error {
	def := m.Definition()
	switch format {
	case "", FormatText:
		return text.Write(w, &def)
	case FormatYAML:
		return yaml.Encode(w, &def)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(def)
	case FormatMermaid:
		_, err := io.WriteString(w, graph.GenerateMermaid(m, nil))
		return err
	}
	return fmt.Errorf("unknown output format %q", format)
}

// Summary describes a model in one line.
func Summary(name string, m *automaton.Model) string {
	kind := "nondeterministic"
	if m.IsDeterministic() {
		kind = "deterministic"
	}
	return fmt.Sprintf("%s: %d states, %d symbols, %d transitions, %d final, %s",
		name, len(m.States()), len(m.Symbols()), len(m.Transitions()), len(m.Finals()), kind)
}

func formatStep(step domain.Step) string {
	states := make([]string, len(step.Active))
	for i, st := range step.Active {
		states[i] = string(st)
	}
	set := "{" + strings.Join(states, ",") + "}"
	if step.Symbol == "" {
		return "start " + set
	}
	return fmt.Sprintf("%s -> %s", step.Symbol, set)
}

func displayWord(w string) string {
	if w == "" {
		return string(domain.Epsilon)
	}
	return w
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
