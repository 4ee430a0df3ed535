package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/dom/superheroes-api/internal/domain"
)

// Source reads the hero dataset from a JSON array on disk.
type Source struct {
	path string
}

func NewSource(path string) *Source {
	return &Source{path: path}
}

func (s *Source) Path() string {
	return s.path
}

func (s *Source) LoadHeroes(ctx context.Context) ([]*domain.Hero, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Load(s.path)
}

// Load reads and decodes the file at path.
func Load(path string) ([]*domain.Hero, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read superheroes data %s: %w", path, err)
	}

	var heroes []*domain.Hero
	if err := json.Unmarshal(data, &heroes); err != nil {
		return nil, fmt.Errorf("failed to parse superheroes data %s: %w", path, err)
	}

	return heroes, nil
}
