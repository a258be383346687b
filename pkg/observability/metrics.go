package observability

import (
	"context"

	"github.com/aretw0/automata/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the collectors fed by evaluation hooks.
type Metrics struct {
	words        *prometheus.CounterVec
	steps        *prometheus.HistogramVec
	dfaStates    *prometheus.HistogramVec
	determinized *prometheus.CounterVec
}

// New creates the collectors and registers them on reg.
// A nil registerer leaves them unregistered.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		words: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "automata_words_evaluated_total",
				Help: "Total number of evaluated words by verdict",
			},
			[]string{"automaton", "verdict"},
		),
		steps: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "automata_evaluation_steps",
				Help:    "Symbols consumed before a verdict was reached",
				Buckets: prometheus.ExponentialBuckets(1, 2, 8),
			},
			[]string{"automaton"},
		),
		dfaStates: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "automata_determinize_states",
				Help:    "Number of states produced by subset construction",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"automaton"},
		),
		determinized: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "automata_determinize_total",
				Help: "Total number of determinizations",
			},
			[]string{"automaton"},
		),
	}
	if reg != nil {
		reg.MustRegister(m.words, m.steps, m.dfaStates, m.determinized)
	}
	return m
}

// Hooks returns evaluation hooks that record into m.
func (m *Metrics) Hooks() domain.EvaluationHooks {
	return domain.EvaluationHooks{
		OnVerdict: func(_ context.Context, e *domain.WordEvent) {
			m.words.WithLabelValues(e.Automaton, string(e.Verdict)).Inc()
			if e.Verdict != domain.VerdictInvalid {
				m.steps.WithLabelValues(e.Automaton).Observe(float64(e.Steps))
			}
		},
		OnDeterminize: func(_ context.Context, e *domain.DeterminizeEvent) {
			m.ObserveDeterminize(e.Automaton, e.States)
		},
	}
}

// ObserveDeterminize records one subset construction producing states DFA states.
func (m *Metrics) ObserveDeterminize(automaton string, states int) {
	m.determinized.WithLabelValues(automaton).Inc()
	m.dfaStates.WithLabelValues(automaton).Observe(float64(states))
}
