// Package loam loads automaton definitions stored as YAML, JSON or Markdown
// frontmatter documents through the loam document library.
package loam

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/loam"
	"github.com/mitchellh/mapstructure"
)

// Metadata is the raw document body as loam hands it over.
// It is decoded into a domain.Definition with mapstructure.
type Metadata map[string]any

var extensions = []string{".yaml", ".yml", ".json", ".md"}

// Loader adapts a loam repository to ports.DefinitionLoader.
type Loader struct {
	Repo *loam.TypedRepository[Metadata]
}

// New creates a Loader over an existing typed repository.
func New(repo *loam.TypedRepository[Metadata]) *Loader {
	return &Loader{Repo: repo}
}

// Open initializes a read-only loam repository rooted at basePath.
// The directory must exist.
func Open(basePath string) (*Loader, error) {
	absPath, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}

	// Strict keeps numbers as json.Number; ReadOnly skips loam's dev sandbox and never writes.
	repo, err := loam.Init(absPath,
		loam.WithStrict(true),
		loam.WithReadOnly(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize loam: %w", err)
	}
	return New(loam.NewTypedRepository[Metadata](repo)), nil
}

// IsDocument reports whether path carries an extension loam can parse.
func IsDocument(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Load retrieves a definition by document ID. The extension may be omitted;
// documents without an alphabet are not automata and are reported as not found.
func (l *Loader) Load(ctx context.Context, name string) (*domain.Definition, error) {
	if name == "" || !filepath.IsLocal(name) {
		return nil, fmt.Errorf("%w: %q", domain.ErrAutomatonNotFound, name)
	}
	if filepath.Ext(name) != "" && !IsDocument(name) {
		return nil, fmt.Errorf("%w: %q", domain.ErrAutomatonNotFound, name)
	}

	doc, err := l.Repo.Get(ctx, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q", domain.ErrAutomatonNotFound, name)
		}
		return nil, fmt.Errorf("loam get failed for %s: %w", name, err)
	}
	if !describesAutomaton(doc.Data) {
		return nil, fmt.Errorf("%w: %q", domain.ErrAutomatonNotFound, name)
	}

	def, err := decode(doc.Data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return def, nil
}

// List returns the IDs of every document that describes an automaton.
func (l *Loader) List(ctx context.Context) ([]string, error) {
	docs, err := l.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list automata: %w", err)
	}

	seen := make(map[string]bool)
	names := []string{}
	for _, doc := range docs {
		if !describesAutomaton(doc.Data) {
			continue
		}
		id := trimExtension(doc.ID)
		if !seen[id] {
			seen[id] = true
			names = append(names, id)
		}
	}
	sort.Strings(names)
	return names, nil
}

func describesAutomaton(meta Metadata) bool {
	_, ok := meta[domain.KeyAlphabet]
	return ok
}

func decode(meta Metadata) (*domain.Definition, error) {
	var def domain.Definition
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &def,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(map[string]any(meta)); err != nil {
		return nil, &domain.Error{Kind: domain.ErrFormat, Detail: err.Error()}
	}
	return &def, nil
}

func trimExtension(id string) string {
	if IsDocument(id) {
		return strings.TrimSuffix(id, filepath.Ext(id))
	}
	return id
}
