package automaton

import (
	"slices"
	"strconv"
	"strings"

	"github.com/aretw0/automata/pkg/domain"
)

// StateSet is a set of states. The zero value is not usable; use NewStateSet.
type StateSet map[domain.State]struct{}

// NewStateSet returns a set holding the given states.
func NewStateSet(states ...domain.State) StateSet {
	s := make(StateSet, len(states))
	for _, st := range states {
		s[st] = struct{}{}
	}
	return s
}

// Add inserts st and reports whether it was new.
func (s StateSet) Add(st domain.State) bool {
	if _, ok := s[st]; ok {
		return false
	}
	s[st] = struct{}{}
	return true
}

// AddAll inserts every member of other.
func (s StateSet) AddAll(other StateSet) {
	for st := range other {
		s[st] = struct{}{}
	}
}

// Has reports membership.
func (s StateSet) Has(st domain.State) bool {
	_, ok := s[st]
	return ok
}

// Len returns the cardinality.
func (s StateSet) Len() int {
	return len(s)
}

// Clone returns an independent copy.
func (s StateSet) Clone() StateSet {
	c := make(StateSet, len(s))
	c.AddAll(s)
	return c
}

// Equal reports whether both sets hold the same members.
func (s StateSet) Equal(other StateSet) bool {
	if len(s) != len(other) {
		return false
	}
	for st := range s {
		if !other.Has(st) {
			return false
		}
	}
	return true
}

// Intersects reports whether the sets share at least one member.
func (s StateSet) Intersects(other StateSet) bool {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	for st := range small {
		if large.Has(st) {
			return true
		}
	}
	return false
}

// Sorted returns the members in lexical order.
func (s StateSet) Sorted() []domain.State {
	out := make([]domain.State, 0, len(s))
	for st := range s {
		out = append(out, st)
	}
	slices.Sort(out)
	return out
}

// Key returns a canonical, order-independent key for the set.
// Labels are length-prefixed so the key is unambiguous for any label content.
func (s StateSet) Key() string {
	var sb strings.Builder
	for _, st := range s.Sorted() {
		sb.WriteString(strconv.Itoa(len(st)))
		sb.WriteByte(':')
		sb.WriteString(string(st))
	}
	return sb.String()
}

// String renders the set as {a,b,c} in lexical order.
func (s StateSet) String() string {
	sorted := s.Sorted()
	parts := make([]string, len(sorted))
	for i, st := range sorted {
		parts[i] = string(st)
	}
	return "{" + strings.Join(parts, ",") + "}"
}
