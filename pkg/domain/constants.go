package domain

// Epsilon is the reserved marker for transitions that consume no input.
// As a standalone word it denotes the empty word.
const Epsilon Symbol = "&"

// Field constants for mapstructure and JSON standardization.
const (
	KeyName          = "name"
	KeyWords         = "words"
	KeyDeterministic = "deterministic"
	KeyAlphabet      = "alphabet"
)

// MaxLineSize bounds a single line read from definitions or word lists.
const MaxLineSize = 16 << 20
