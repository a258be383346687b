package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	loamAdapter "github.com/aretw0/automata/pkg/adapters/loam"
	"github.com/aretw0/automata/pkg/adapters/text"
	"github.com/aretw0/automata/pkg/adapters/yaml"
	"github.com/aretw0/automata/pkg/automaton"
	"github.com/aretw0/automata/pkg/domain"
)

// LoadFile reads and validates a definition file, choosing the format by extension.
// YAML files are decoded strictly, other documents (JSON, Markdown frontmatter) go
// through loam, and everything else is the text format whose errors carry line numbers.
func LoadFile(path string) (*automaton.Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var def *domain.Definition
	switch {
	case yaml.IsYAML(path):
		def, err = yaml.Decode(f)
	case loamAdapter.IsDocument(path):
		def, err = loadDocument(path)
	default:
		m, err := text.Read(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return m, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	m, err := automaton.New(*def)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

func loadDocument(path string) (*domain.Definition, error) {
	dir, name := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	docs, err := loamAdapter.Open(dir)
	if err != nil {
		return nil, err
	}
	return docs.Load(context.Background(), name)
}
