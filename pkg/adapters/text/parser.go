package text

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/automata/pkg/automaton"
	"github.com/aretw0/automata/pkg/domain"
)

const (
	lineAlphabet = 1
	lineStates   = 2
	lineInitial  = 3
	lineFinals   = 4
)

// source is a parsed description plus the line each transition came from.
type source struct {
	def   domain.Definition
	lines []int
}

// Parse reads a description without semantic validation.
// Only format errors (token counts, missing header lines) are reported.
func Parse(r io.Reader) (*domain.Definition, error) {
	src, err := parse(r)
	if err != nil {
		return nil, err
	}
	return &src.def, nil
}

// Read parses and validates a description into a Model.
// Validation errors carry the line number of the offending token.
func Read(r io.Reader) (*automaton.Model, error) {
	src, err := parse(r)
	if err != nil {
		return nil, err
	}
	return src.compile()
}

func (s *source) compile() (*automaton.Model, error) {
	m, err := automaton.New(s.def)
	if err == nil {
		return m, nil
	}
	var derr *domain.Error
	if errors.As(err, &derr) && derr.Line == 0 {
		located := *derr
		located.Line = s.lineOf(derr)
		return nil, &located
	}
	return nil, err
}

func (s *source) lineOf(e *domain.Error) int {
	switch {
	case e.Index > 0 && e.Index <= len(s.lines):
		return s.lines[e.Index-1]
	case errors.Is(e.Kind, domain.ErrInvalidAlphabet):
		return lineAlphabet
	case errors.Is(e.Kind, domain.ErrInvalidInitialState):
		return lineInitial
	case errors.Is(e.Kind, domain.ErrInvalidFinalState):
		return lineFinals
	}
	return 0
}

func parse(r io.Reader) (*source, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), domain.MaxLineSize)
	var rows [][]string
	for scanner.Scan() {
		rows = append(rows, strings.Fields(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read description: %w", err)
	}

	// Trailing blank lines are an editor artifact, not transitions.
	for len(rows) > 0 && len(rows[len(rows)-1]) == 0 {
		rows = rows[:len(rows)-1]
	}
	if len(rows) < lineInitial {
		return nil, &domain.Error{
			Kind:   domain.ErrFormat,
			Line:   len(rows) + 1,
			Detail: "expected alphabet, states and initial state lines",
		}
	}

	src := &source{}
	for _, tok := range rows[lineAlphabet-1] {
		src.def.Alphabet = append(src.def.Alphabet, domain.Symbol(tok))
	}
	for _, tok := range rows[lineStates-1] {
		src.def.States = append(src.def.States, domain.State(tok))
	}

	initial := rows[lineInitial-1]
	if len(initial) != 1 {
		return nil, &domain.Error{
			Kind:   domain.ErrFormat,
			Token:  strings.Join(initial, " "),
			Line:   lineInitial,
			Detail: fmt.Sprintf("expected exactly one initial state, got %d tokens", len(initial)),
		}
	}
	src.def.Initial = domain.State(initial[0])

	if len(rows) >= lineFinals {
		for _, tok := range rows[lineFinals-1] {
			src.def.Finals = append(src.def.Finals, domain.State(tok))
		}
	}

	for i := lineFinals; i < len(rows); i++ {
		parts := rows[i]
		if len(parts) != 3 {
			return nil, &domain.Error{
				Kind:   domain.ErrFormat,
				Token:  strings.Join(parts, " "),
				Line:   i + 1,
				Detail: fmt.Sprintf("expected origin, label and destination, got %d tokens", len(parts)),
			}
		}
		src.def.Transitions = append(src.def.Transitions, domain.Transition{
			From:  domain.State(parts[0]),
			Label: domain.Symbol(parts[1]),
			To:    domain.State(parts[2]),
		})
		src.lines = append(src.lines, i+1)
	}

	return src, nil
}
