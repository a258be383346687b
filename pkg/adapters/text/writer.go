package text

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/aretw0/automata/pkg/domain"
)

// Write renders def in the description format. Labels containing whitespace
// cannot be represented and are rejected.
func Write(w io.Writer, def *domain.Definition) error {
	bw := bufio.NewWriter(w)

	symbols := make([]string, len(def.Alphabet))
	for i, s := range def.Alphabet {
		symbols[i] = string(s)
	}
	if err := writeLine(bw, symbols...); err != nil {
		return err
	}
	if err := writeLine(bw, states(def.States)...); err != nil {
		return err
	}
	if err := writeLine(bw, string(def.Initial)); err != nil {
		return err
	}
	if err := writeLine(bw, states(def.Finals)...); err != nil {
		return err
	}
	for _, t := range def.Transitions {
		if err := writeLine(bw, string(t.From), string(t.Label), string(t.To)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Format renders def as a string.
func Format(def *domain.Definition) (string, error) {
	var sb strings.Builder
	if err := Write(&sb, def); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func states(in []domain.State) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = string(s)
	}
	return out
}

func writeLine(w *bufio.Writer, tokens ...string) error {
	for _, tok := range tokens {
		if tok == "" || strings.ContainsFunc(tok, unicode.IsSpace) {
			return &domain.Error{Kind: domain.ErrFormat, Token: tok, Detail: "token cannot be empty or contain whitespace"}
		}
	}
	_, err := fmt.Fprintln(w, strings.Join(tokens, " "))
	return err
}
