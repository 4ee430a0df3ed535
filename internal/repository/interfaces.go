package repository

import (
	"context"

	"github.com/dom/superheroes-api/internal/domain"
)

// HeroLookup resolves heroes by id over a pre-loaded, read-only collection.
// Implementations must be safe for concurrent use and must not block.
type HeroLookup interface {
	FindByID(id domain.HeroID) (*domain.Hero, bool)
}

// HeroCatalog is the read-only view the HTTP and MCP surfaces serve from.
type HeroCatalog interface {
	HeroLookup
	FindByName(name string) (*domain.Hero, bool)
	FindByIDOrName(id domain.HeroID, name string) (*domain.Hero, bool)
	All() []*domain.Hero
	Len() int
}

// HeroSource loads the full dataset once at start-up.
type HeroSource interface {
	LoadHeroes(ctx context.Context) ([]*domain.Hero, error)
}

type HeroRepository interface {
	HeroSource
	UpsertMany(ctx context.Context, heroes []*domain.Hero) error
	ReplaceAll(ctx context.Context, heroes []*domain.Hero) error
	GetAll(ctx context.Context) ([]*domain.Hero, error)
	GetByID(ctx context.Context, id domain.HeroID) (*domain.Hero, error)
}

type Repositories struct {
	Hero HeroRepository
}
