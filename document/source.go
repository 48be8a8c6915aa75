package document

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrNotFound is returned by a Source that has no document with the id.
var ErrNotFound = errors.New("document: not found")

// Source retrieves the business data of a document.
type Source interface {
	Load(ctx context.Context, id string) (Model, error)
}

// DirSource reads documents from <Dir>/<id>.yaml.
type DirSource struct {
	Dir string
}

// Load implements Source.
func (s DirSource) Load(ctx context.Context, id string) (Model, error) {
	if err := ctx.Err(); err != nil {
		return Model{}, err
	}
	if id == "" || id != filepath.Base(id) || strings.HasPrefix(id, ".") {
		return Model{}, fmt.Errorf("%w: invalid id %q", ErrNotFound, id)
	}

	data, err := os.ReadFile(filepath.Join(s.Dir, id+".yaml"))
	if errors.Is(err, os.ErrNotExist) {
		return Model{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return Model{}, fmt.Errorf("failed to read document %s: %w", id, err)
	}

	var m Model
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Model{}, fmt.Errorf("failed to parse document %s: %w", id, err)
	}
	if m.ID == "" {
		m.ID = id
	}
	return m, nil
}

// MemorySource serves documents from a map keyed by id.
type MemorySource map[string]Model

// Load implements Source.
func (s MemorySource) Load(ctx context.Context, id string) (Model, error) {
	if err := ctx.Err(); err != nil {
		return Model{}, err
	}
	m, ok := s[id]
	if !ok {
		return Model{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if m.ID == "" {
		m.ID = id
	}
	return m, nil
}
