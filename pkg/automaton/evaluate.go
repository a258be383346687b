package automaton

import (
	"context"
	"fmt"
	"time"

	"github.com/aretw0/automata/pkg/domain"
)

// Evaluator classifies words against a single model.
// It is safe for concurrent use.
type Evaluator struct {
	model *Model
	name  string
	hooks domain.EvaluationHooks
	trace bool
}

// EvaluatorOption configures an Evaluator.
type EvaluatorOption func(*Evaluator)

// WithHooks registers observability callbacks.
func WithHooks(hooks domain.EvaluationHooks) EvaluatorOption {
	return func(e *Evaluator) {
		e.hooks = hooks
	}
}

// WithTrace records the active state set after every step in Result.Trace.
func WithTrace(enabled bool) EvaluatorOption {
	return func(e *Evaluator) {
		e.trace = enabled
	}
}

// WithName labels emitted events with the automaton name.
func WithName(name string) EvaluatorOption {
	return func(e *Evaluator) {
		e.name = name
	}
}

// NewEvaluator creates an evaluator for m.
func NewEvaluator(m *Model, opts ...EvaluatorOption) *Evaluator {
	e := &Evaluator{model: m}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate classifies m against word without hooks or tracing.
func Evaluate(m *Model, word string) domain.Result {
	return NewEvaluator(m).Evaluate(context.Background(), word)
}

// Tokenize splits a word into one symbol per rune.
// The standalone epsilon marker and the empty string both denote the empty word.
func Tokenize(word string) []domain.Symbol {
	if word == "" || domain.Symbol(word).IsEpsilon() {
		return nil
	}
	out := make([]domain.Symbol, 0, len(word))
	for _, r := range word {
		out = append(out, domain.Symbol(string(r)))
	}
	return out
}

// Evaluate classifies word, splitting it with Tokenize.
func (e *Evaluator) Evaluate(ctx context.Context, word string) domain.Result {
	return e.EvaluateSymbols(ctx, word, Tokenize(word))
}

// EvaluateSymbols classifies an already tokenized word. word is only used for labelling.
// A nil slice, or a slice holding only the epsilon marker, is the empty word.
func (e *Evaluator) EvaluateSymbols(ctx context.Context, word string, symbols []domain.Symbol) domain.Result {
	if len(symbols) == 1 && symbols[0].IsEpsilon() {
		symbols = nil
	}
	if e.hooks.OnWordStart != nil {
		e.hooks.OnWordStart(ctx, &domain.WordEvent{EventBase: e.base(domain.EventWordStart), Word: word})
	}

	res, steps := e.run(ctx, word, symbols)

	if e.hooks.OnVerdict != nil {
		e.hooks.OnVerdict(ctx, &domain.WordEvent{
			EventBase: e.base(domain.EventVerdict),
			Word:      word,
			Verdict:   res.Verdict,
			Steps:     steps,
		})
	}
	return res
}

func (e *Evaluator) run(ctx context.Context, word string, symbols []domain.Symbol) (domain.Result, int) {
	res := domain.Result{Word: word}

	for _, sym := range symbols {
		if !e.model.HasSymbol(sym) {
			res.Verdict = domain.VerdictInvalid
			res.Err = domain.NewError(domain.ErrInvalidWordSymbol, string(sym))
			res.Reason = fmt.Sprintf("symbol %q is not in the alphabet", sym)
			return res, 0
		}
	}

	active := e.model.Closure(e.model.initial)
	if e.trace {
		res.Trace = append(res.Trace, domain.Step{Active: active.Sorted()})
	}

	for i, sym := range symbols {
		next := e.model.step(active, sym)
		if e.trace {
			res.Trace = append(res.Trace, domain.Step{Symbol: sym, Active: next.Sorted()})
		}
		if e.hooks.OnStep != nil {
			e.hooks.OnStep(ctx, &domain.StepEvent{
				EventBase: e.base(domain.EventStep),
				Word:      word,
				Index:     i,
				Symbol:    sym,
				Active:    next.Sorted(),
			})
		}
		if next.Len() == 0 {
			res.Verdict = domain.VerdictRejected
			res.Reason = fmt.Sprintf("no transition on %q from %s", sym, active)
			return res, i + 1
		}
		active = next
	}

	if e.model.accepting(active) {
		res.Verdict = domain.VerdictAccepted
	} else {
		res.Verdict = domain.VerdictRejected
		res.Reason = fmt.Sprintf("no final state in %s", active)
	}
	return res, len(symbols)
}

func (e *Evaluator) base(t domain.EventType) domain.EventBase {
	return domain.EventBase{Timestamp: time.Now(), Type: t, Automaton: e.name}
}
