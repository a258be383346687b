package graph

import (
	"context"
	"fmt"
	"strings"

	"github.com/aretw0/automata/pkg/automaton"
	"github.com/aretw0/automata/pkg/domain"
)

// Overlay contains evaluation state to visualize on the graph.
type Overlay struct {
	Visited []domain.State
	Active  []domain.State
}

// GenerateMermaid produces a Mermaid flowchart for a model.
// It applies semantic styling:
// - Final: (((Double circle)))
// - Other: ((Circle))
// - Initial: entered by an arrow from an unlabelled point
// Parallel transitions between the same pair of states share one edge.
// It also applies overlay styles (Visited/Active) if provided.
func GenerateMermaid(m *automaton.Model, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	// Composite labels contain braces and commas, so nodes get positional IDs.
	ids := make(map[domain.State]string, len(m.States()))
	for i, st := range m.States() {
		ids[st] = fmt.Sprintf("s%d", i)
	}

	sb.WriteString("    start_[ ]:::entry\n")
	for _, st := range m.States() {
		opener, closer := "((", "))"
		if m.IsFinal(st) {
			opener, closer = "(((", ")))"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", ids[st], opener, escapeLabel(string(st)), closer))
	}
	sb.WriteString(fmt.Sprintf("    start_ --> %s\n", ids[m.Initial()]))

	type pair struct{ from, to domain.State }
	var order []pair
	labels := make(map[pair][]string)
	for _, t := range m.Transitions() {
		p := pair{t.From, t.To}
		if _, ok := labels[p]; !ok {
			order = append(order, p)
		}
		labels[p] = append(labels[p], escapeLabel(string(t.Label)))
	}
	for _, p := range order {
		arrow := fmt.Sprintf("-- \"%s\" -->", strings.Join(labels[p], ","))
		sb.WriteString(fmt.Sprintf("    %s %s %s\n", ids[p.from], arrow, ids[p.to]))
	}

	sb.WriteString("    classDef entry fill:none,stroke:none;\n")

	// Apply Overlay Styles
	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef active fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		seen := make(map[string]bool)
		for _, st := range overlay.Visited {
			id, ok := ids[st]
			if ok && !seen[id] {
				seen[id] = true
				sb.WriteString(fmt.Sprintf("    class %s visited;\n", id))
			}
		}
		for _, st := range overlay.Active {
			if id, ok := ids[st]; ok {
				sb.WriteString(fmt.Sprintf("    class %s active;\n", id))
			}
		}
	}

	return sb.String()
}

// OverlayFromTrace marks every state seen in a trace as visited and the last step as active.
func OverlayFromTrace(trace []domain.Step) *Overlay {
	o := &Overlay{}
	for _, step := range trace {
		o.Visited = append(o.Visited, step.Active...)
	}
	if len(trace) > 0 {
		o.Active = trace[len(trace)-1].Active
	}
	return o
}

// Highlight runs word through m with tracing on and returns the overlay of that run.
// Invalid words are rejected before any step, so their overlay is empty.
func Highlight(ctx context.Context, m *automaton.Model, word string) (*Overlay, domain.Result) {
	res := automaton.NewEvaluator(m, automaton.WithTrace(true)).Evaluate(ctx, word)
	return OverlayFromTrace(res.Trace), res
}

func escapeLabel(s string) string {
	s = strings.ReplaceAll(s, "#", "#35;")
	return strings.ReplaceAll(s, "\"", "#quot;")
}
