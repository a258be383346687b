package automaton

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/automata/pkg/domain"
)

// Stats summarizes a subset construction.
type Stats struct {
	SourceStates int
	States       int
	Transitions  int
	Duration     time.Duration
}

type determinizeConfig struct {
	logger   *slog.Logger
	limit    int
	observer func(Stats)
}

// DeterminizeOption configures Determinize.
type DeterminizeOption func(*determinizeConfig)

// WithLogger logs every discovered composite state at debug level.
func WithLogger(logger *slog.Logger) DeterminizeOption {
	return func(c *determinizeConfig) {
		c.logger = logger
	}
}

// WithStateLimit aborts with domain.ErrStateLimit once more than n composite states are discovered.
// Zero or negative means unlimited.
func WithStateLimit(n int) DeterminizeOption {
	return func(c *determinizeConfig) {
		c.limit = n
	}
}

// WithObserver receives construction statistics once Determinize succeeds.
func WithObserver(fn func(Stats)) DeterminizeOption {
	return func(c *determinizeConfig) {
		c.observer = fn
	}
}

type composite struct {
	label   domain.State
	members StateSet
}

// Determinize converts m into an equivalent deterministic model by subset construction.
//
// Each state of the result stands for the epsilon closure of a set of states of m.
// Missing (state, symbol) entries are the implicit reject state; it is never materialized.
func Determinize(m *Model, opts ...DeterminizeOption) (*Model, error) {
	cfg := determinizeConfig{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	started := time.Now()

	var (
		discovered = make(map[string]*composite)
		labels     = make(map[domain.State]struct{})
		order      []*composite
		worklist   []*composite
		def        = domain.Definition{Alphabet: m.Alphabet()}
	)

	discover := func(set StateSet) (*composite, error) {
		key := set.Key()
		if c, ok := discovered[key]; ok {
			return c, nil
		}
		if cfg.limit > 0 && len(order) >= cfg.limit {
			return nil, &domain.Error{
				Kind:   domain.ErrStateLimit,
				Token:  set.String(),
				Detail: fmt.Sprintf("more than %d states", cfg.limit),
			}
		}
		c := &composite{label: uniqueLabel(set, labels), members: set}
		discovered[key] = c
		order = append(order, c)
		worklist = append(worklist, c)
		cfg.logger.Debug("discovered state", "state", c.label, "members", set.Len())
		return c, nil
	}

	start, err := discover(m.Closure(m.initial))
	if err != nil {
		return nil, err
	}
	def.Initial = start.label

	symbols := m.Symbols()
	for len(worklist) > 0 {
		current := worklist[0]
		worklist = worklist[1:]

		for _, sym := range symbols {
			next := m.step(current.members, sym)
			if next.Len() == 0 {
				continue
			}
			target, err := discover(next)
			if err != nil {
				return nil, err
			}
			def.Transitions = append(def.Transitions, domain.Transition{
				From:  current.label,
				Label: sym,
				To:    target.label,
			})
		}
	}

	members := make(map[domain.State]StateSet, len(order))
	for _, c := range order {
		def.States = append(def.States, c.label)
		if m.accepting(c.members) {
			def.Finals = append(def.Finals, c.label)
		}
		members[c.label] = c.members
	}

	dfa, err := New(def)
	if err != nil {
		return nil, fmt.Errorf("determinize: %w", err)
	}
	dfa.members = members

	stats := Stats{
		SourceStates: len(m.states),
		States:       len(order),
		Transitions:  len(def.Transitions),
		Duration:     time.Since(started),
	}
	cfg.logger.Debug("determinized",
		"source_states", stats.SourceStates,
		"states", stats.States,
		"transitions", stats.Transitions,
	)
	if cfg.observer != nil {
		cfg.observer(stats)
	}
	return dfa, nil
}

// uniqueLabel renders set as {a,b} and suffixes #n if another set already took that label.
func uniqueLabel(set StateSet, taken map[domain.State]struct{}) domain.State {
	base := domain.State(set.String())
	label := base
	for n := 2; ; n++ {
		if _, ok := taken[label]; !ok {
			break
		}
		label = domain.State(fmt.Sprintf("%s#%d", base, n))
	}
	taken[label] = struct{}{}
	return label
}
