// Package yaml reads and writes automaton definitions as YAML documents.
//
//	alphabet: [a, b, "&"]
//	states: [q0, q1, q2]
//	initial: q0
//	finals: [q2]
//	transitions:
//	  - {from: q0, label: a, to: q1}
package yaml

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/aretw0/automata/pkg/domain"
	"gopkg.in/yaml.v3"
)

// Decode reads a single definition. Unknown fields are rejected.
func Decode(r io.Reader) (*domain.Definition, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var def domain.Definition
	if err := dec.Decode(&def); err != nil {
		if err == io.EOF {
			return nil, &domain.Error{Kind: domain.ErrFormat, Detail: "empty document"}
		}
		return nil, &domain.Error{Kind: domain.ErrFormat, Detail: err.Error()}
	}
	return &def, nil
}

// Encode writes def as YAML.
func Encode(w io.Writer, def *domain.Definition) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(def); err != nil {
		return fmt.Errorf("failed to encode definition: %w", err)
	}
	return enc.Close()
}

// Marshal renders def as YAML bytes.
func Marshal(def *domain.Definition) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, def); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// IsYAML reports whether path has a YAML extension.
func IsYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
