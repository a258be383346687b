package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Match them with errors.Is.
var (
	// ErrFormat is returned for malformed lines in an automaton description.
	ErrFormat = errors.New("format error")

	// ErrInvalidAlphabet is returned when the alphabet is empty or lacks the epsilon marker.
	ErrInvalidAlphabet = fmt.Errorf("invalid alphabet: %w", ErrFormat)

	// ErrUnknownSymbol is returned when a transition label is neither epsilon nor declared.
	ErrUnknownSymbol = errors.New("unknown symbol")

	// ErrUnknownState is returned when a state reference is not a declared state.
	ErrUnknownState = errors.New("unknown state")

	// ErrInvalidInitialState is returned when the initial state is not declared.
	ErrInvalidInitialState = fmt.Errorf("invalid initial state: %w", ErrUnknownState)

	// ErrInvalidFinalState is returned when a final state is not declared.
	ErrInvalidFinalState = fmt.Errorf("invalid final state: %w", ErrUnknownState)

	// ErrInvalidWordSymbol marks a word containing a symbol outside the alphabet.
	// It only ever appears inside a Result, never as a process-level failure.
	ErrInvalidWordSymbol = errors.New("invalid word symbol")

	// ErrStateLimit is returned when determinization would exceed its configured state limit.
	ErrStateLimit = errors.New("state limit exceeded")
)

// ErrAutomatonNotFound is returned when a loader has no definition under the requested name.
var ErrAutomatonNotFound = errors.New("automaton not found")

// ErrReportNotFound is returned when a report ID cannot be found in the store.
var ErrReportNotFound = errors.New("report not found")

// Error is a taxonomy-tagged error identifying the offending token.
type Error struct {
	Kind   error  // One of the Err* kinds above
	Token  string // Offending token, if any
	Line   int    // 1-based source line, 0 when unknown
	Index  int    // 1-based transition index, 0 when not about a transition
	Detail string // Optional human-readable context
}

func (e *Error) Error() string {
	msg := e.Kind.Error()
	if e.Token != "" {
		msg = fmt.Sprintf("%s %q", msg, e.Token)
	}
	switch {
	case e.Line > 0:
		msg = fmt.Sprintf("line %d: %s", e.Line, msg)
	case e.Index > 0:
		msg = fmt.Sprintf("transition %d: %s", e.Index, msg)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// NewError builds an Error of the given kind for token.
func NewError(kind error, token string) *Error {
	return &Error{Kind: kind, Token: token}
}
