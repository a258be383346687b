package automaton

import (
	"cmp"
	"slices"

	"github.com/aretw0/automata/pkg/domain"
)

type edge struct {
	from  domain.State
	label domain.Symbol
}

// Relation maps (origin, label) pairs to destination sets.
// It is only mutated while a Model is being built.
type Relation struct {
	edges map[edge]StateSet
	size  int
}

func newRelation() *Relation {
	return &Relation{edges: make(map[edge]StateSet)}
}

func (r *Relation) add(from domain.State, label domain.Symbol, to domain.State) {
	k := edge{from, label}
	dst, ok := r.edges[k]
	if !ok {
		dst = NewStateSet()
		r.edges[k] = dst
	}
	if dst.Add(to) {
		r.size++
	}
}

// Destinations returns the states reachable from from on label.
// The returned set must not be modified.
func (r *Relation) Destinations(from domain.State, label domain.Symbol) StateSet {
	return r.edges[edge{from, label}]
}

// Deterministic reports whether no epsilon edge exists and every pair has at most one destination.
func (r *Relation) Deterministic() bool {
	for k, dst := range r.edges {
		if k.label.IsEpsilon() || dst.Len() > 1 {
			return false
		}
	}
	return true
}

// Transitions lists every transition sorted by origin, label and destination.
func (r *Relation) Transitions() []domain.Transition {
	out := make([]domain.Transition, 0, r.size)
	for k, dst := range r.edges {
		for _, to := range dst.Sorted() {
			out = append(out, domain.Transition{From: k.from, Label: k.label, To: to})
		}
	}
	slices.SortFunc(out, compareTransitions)
	return out
}

func compareTransitions(a, b domain.Transition) int {
	if c := cmp.Compare(a.From, b.From); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Label, b.Label); c != 0 {
		return c
	}
	return cmp.Compare(a.To, b.To)
}
