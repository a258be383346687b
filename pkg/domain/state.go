package domain

// State is an opaque state label.
type State string

// Symbol is an input symbol or the Epsilon marker.
type Symbol string

// IsEpsilon reports whether s is the reserved epsilon marker.
func (s Symbol) IsEpsilon() bool {
	return s == Epsilon
}
