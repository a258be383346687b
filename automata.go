package automata

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"runtime"
	"time"

	"github.com/aretw0/automata/pkg/adapters/multi"
	"github.com/aretw0/automata/pkg/automaton"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/observability"
	"github.com/aretw0/automata/pkg/ports"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Engine is the high-level entry point for the automata library.
// It ties a definition loader to the core model, the evaluator and an optional report store.
type Engine struct {
	loader      ports.DefinitionLoader
	store       ports.ReportStore
	hooks       domain.EvaluationHooks
	metrics     *observability.Metrics
	logger      *slog.Logger
	concurrency int
	stateLimit  int
	trace       bool
	Name        string
}

var _ ports.Engine = (*Engine)(nil)

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLoader injects a custom DefinitionLoader, bypassing the default directory loader.
func WithLoader(l ports.DefinitionLoader) Option {
	return func(e *Engine) {
		e.loader = l
	}
}

// WithStore persists every report produced by Run.
func WithStore(s ports.ReportStore) Option {
	return func(e *Engine) {
		e.store = s
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks domain.EvaluationHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithMetrics records evaluations and determinizations into m.
func WithMetrics(m *observability.Metrics) Option {
	return func(e *Engine) {
		e.metrics = m
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithConcurrency bounds the number of words evaluated in parallel (default: GOMAXPROCS).
func WithConcurrency(n int) Option {
	return func(e *Engine) {
		e.concurrency = n
	}
}

// WithStateLimit aborts determinization beyond n composite states.
func WithStateLimit(n int) Option {
	return func(e *Engine) {
		e.stateLimit = n
	}
}

// WithTrace records the active state set after every step in each result.
func WithTrace(enabled bool) Option {
	return func(e *Engine) {
		e.trace = enabled
	}
}

// New initializes a new Engine.
// By default, it loads text and document (YAML, JSON, Markdown) definitions from dir,
// which must exist.
// If WithLoader option is provided, dir can be empty.
func New(dir string, opts ...Option) (*Engine, error) {
	eng := &Engine{}

	for _, opt := range opts {
		opt(eng)
	}

	if eng.loader == nil {
		if dir == "" {
			return nil, fmt.Errorf("dir is required when no custom loader is provided")
		}
		absPath, err := filepath.Abs(dir)
		if err != nil {
			return nil, fmt.Errorf("invalid path: %w", err)
		}
		eng.Name = filepath.Base(absPath)
		loader, err := multi.Dir(absPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open definitions: %w", err)
		}
		eng.loader = loader
	} else if dir != "" {
		eng.Name = filepath.Base(dir)
	}

	if eng.logger == nil {
		eng.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	if eng.Name != "" {
		eng.logger = eng.logger.With("catalog", eng.Name)
	}

	if eng.concurrency <= 0 {
		eng.concurrency = runtime.GOMAXPROCS(0)
	}
	if eng.metrics != nil {
		eng.hooks = eng.hooks.Merge(eng.metrics.Hooks())
	}

	return eng, nil
}

// List returns the names of available automata.
func (e *Engine) List(ctx context.Context) ([]string, error) {
	return e.loader.List(ctx)
}

// Compile loads and validates the named automaton.
// When deterministic is set, the result is the equivalent DFA.
func (e *Engine) Compile(ctx context.Context, name string, deterministic bool) (*automaton.Model, error) {
	def, err := e.loader.Load(ctx, name)
	if err != nil {
		return nil, err
	}

	m, err := automaton.New(*def)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if !deterministic {
		return m, nil
	}

	dfa, err := automaton.Determinize(m,
		automaton.WithLogger(e.logger.With("automaton", name)),
		automaton.WithStateLimit(e.stateLimit),
		automaton.WithObserver(func(s automaton.Stats) {
			if e.hooks.OnDeterminize == nil {
				return
			}
			e.hooks.OnDeterminize(ctx, &domain.DeterminizeEvent{
				EventBase: domain.EventBase{
					Timestamp: time.Now(),
					Type:      domain.EventDeterminize,
					Automaton: name,
				},
				SourceStates: s.SourceStates,
				States:       s.States,
				Transitions:  s.Transitions,
				Duration:     s.Duration,
			})
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return dfa, nil
}

// Evaluator compiles the named automaton once and returns an evaluator carrying
// the engine's hooks and trace setting. Callers evaluating words one at a time
// use it to avoid reloading the definition per word.
func (e *Engine) Evaluator(ctx context.Context, name string, deterministic bool) (*automaton.Evaluator, error) {
	m, err := e.Compile(ctx, name, deterministic)
	if err != nil {
		return nil, err
	}
	return automaton.NewEvaluator(m,
		automaton.WithName(name),
		automaton.WithHooks(e.hooks),
		automaton.WithTrace(e.trace),
	), nil
}

// Run evaluates words against the named automaton.
// Results keep the order of words. Invalid words never abort the batch.
func (e *Engine) Run(ctx context.Context, name string, words []string, deterministic bool) (*domain.Report, error) {
	ev, err := e.Evaluator(ctx, name, deterministic)
	if err != nil {
		return nil, err
	}

	results := make([]domain.Result, len(words))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)
	for i, w := range words {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = ev.Evaluate(gctx, w)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return e.Record(ctx, name, deterministic, results)
}

// Record wraps results into a report, logs a summary and saves it when a store is configured.
func (e *Engine) Record(ctx context.Context, name string, deterministic bool, results []domain.Result) (*domain.Report, error) {
	report := &domain.Report{
		ID:            uuid.NewString(),
		Automaton:     name,
		Deterministic: deterministic,
		Results:       results,
		CreatedAt:     time.Now().UTC(),
	}

	e.logger.Info("evaluated",
		"automaton", name,
		"words", len(results),
		"accepted", report.Count(domain.VerdictAccepted),
		"rejected", report.Count(domain.VerdictRejected),
		"invalid", report.Count(domain.VerdictInvalid),
	)

	if e.store != nil {
		if err := e.store.Save(ctx, report); err != nil {
			return nil, fmt.Errorf("failed to save report: %w", err)
		}
	}
	return report, nil
}

// Report retrieves a previously stored report.
func (e *Engine) Report(ctx context.Context, id string) (*domain.Report, error) {
	if e.store == nil {
		return nil, fmt.Errorf("no report store configured: %w", domain.ErrReportNotFound)
	}
	return e.store.Load(ctx, id)
}

// Reports lists the IDs of stored reports.
func (e *Engine) Reports(ctx context.Context) ([]string, error) {
	if e.store == nil {
		return []string{}, nil
	}
	return e.store.List(ctx)
}

// Loader returns the underlying DefinitionLoader used by the engine.
func (e *Engine) Loader() ports.DefinitionLoader {
	return e.loader
}
