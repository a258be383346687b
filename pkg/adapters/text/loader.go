package text

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aretw0/automata/pkg/domain"
)

// Extension is the file extension used for text descriptions.
const Extension = ".txt"

// Loader implements ports.DefinitionLoader over a directory of text descriptions.
type Loader struct {
	BasePath string
}

// NewLoader creates a Loader rooted at basePath.
func NewLoader(basePath string) *Loader {
	if basePath == "" {
		basePath = "."
	}
	return &Loader{BasePath: basePath}
}

// Load reads name from the base directory. name may omit the .txt extension.
func (l *Loader) Load(ctx context.Context, name string) (*domain.Definition, error) {
	path, err := l.resolve(name)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	def, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return def, nil
}

// List returns the names (without extension) of every .txt file in the base directory.
func (l *Loader) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(l.BasePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list automata: %w", err)
	}

	names := []string{}
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == Extension {
			names = append(names, strings.TrimSuffix(entry.Name(), Extension))
		}
	}
	sort.Strings(names)
	return names, nil
}

func (l *Loader) resolve(name string) (string, error) {
	if name == "" || !filepath.IsLocal(name) {
		return "", fmt.Errorf("%w: %q", domain.ErrAutomatonNotFound, name)
	}
	for _, candidate := range []string{name, name + Extension} {
		path := filepath.Join(l.BasePath, candidate)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: %q", domain.ErrAutomatonNotFound, name)
}
