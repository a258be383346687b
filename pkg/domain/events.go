package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventWordStart   EventType = "word_start"
	EventStep        EventType = "step"
	EventVerdict     EventType = "verdict"
	EventDeterminize EventType = "determinize"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	Automaton string    `json:"automaton,omitempty"`
}

// WordEvent is emitted when evaluation of a word starts or ends.
type WordEvent struct {
	EventBase
	Word    string  `json:"word"`
	Verdict Verdict `json:"verdict,omitempty"`
	Steps   int     `json:"steps"`
}

// StepEvent is emitted after each consumed symbol.
type StepEvent struct {
	EventBase
	Word   string  `json:"word"`
	Index  int     `json:"index"`
	Symbol Symbol  `json:"symbol"`
	Active []State `json:"active"`
}

// DeterminizeEvent summarizes a finished subset construction.
type DeterminizeEvent struct {
	EventBase
	SourceStates int           `json:"source_states"`
	States       int           `json:"states"`
	Transitions  int           `json:"transitions"`
	Duration     time.Duration `json:"duration"`
}

// EvaluationHooks defines callbacks for evaluator observability.
// Hooks never influence verdicts.
type EvaluationHooks struct {
	OnWordStart   func(context.Context, *WordEvent)
	OnStep        func(context.Context, *StepEvent)
	OnVerdict     func(context.Context, *WordEvent)
	OnDeterminize func(context.Context, *DeterminizeEvent)
}

// Merge returns hooks that call h first and then other.
func (h EvaluationHooks) Merge(other EvaluationHooks) EvaluationHooks {
	return EvaluationHooks{
		OnWordStart:   chain(h.OnWordStart, other.OnWordStart),
		OnStep:        chain(h.OnStep, other.OnStep),
		OnVerdict:     chain(h.OnVerdict, other.OnVerdict),
		OnDeterminize: chain(h.OnDeterminize, other.OnDeterminize),
	}
}

func chain[E any](a, b func(context.Context, E)) func(context.Context, E) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(ctx context.Context, e E) {
		a(ctx, e)
		b(ctx, e)
	}
}
