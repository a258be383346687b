package domain

import "time"

// Verdict classifies a word against an automaton.
type Verdict string

const (
	VerdictAccepted Verdict = "ACCEPTED"
	VerdictRejected Verdict = "REJECTED"
	VerdictInvalid  Verdict = "INVALID" // Word uses a symbol outside the alphabet
)

// Step records the active state set after consuming one symbol.
type Step struct {
	Symbol Symbol  `json:"symbol"`
	Active []State `json:"active"`
}

// Result is the outcome of evaluating a single word.
type Result struct {
	Word    string  `json:"word"`
	Verdict Verdict `json:"verdict"`
	Reason  string  `json:"reason,omitempty"`

	// Err is set for INVALID verdicts and matches ErrInvalidWordSymbol.
	Err error `json:"-"`

	// Trace holds the active sets per step when tracing is enabled.
	// The first entry (empty Symbol) is the initial closure.
	Trace []Step `json:"trace,omitempty"`
}

// Report gathers the results of a batch evaluation.
type Report struct {
	ID            string    `json:"id"`
	Automaton     string    `json:"automaton"`
	Deterministic bool      `json:"deterministic"`
	Results       []Result  `json:"results"`
	CreatedAt     time.Time `json:"created_at"`
}

// Count returns how many results carry the given verdict.
func (r *Report) Count(v Verdict) int {
	n := 0
	for _, res := range r.Results {
		if res.Verdict == v {
			n++
		}
	}
	return n
}
