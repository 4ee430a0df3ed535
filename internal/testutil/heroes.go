package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/dom/superheroes-api/internal/domain"
	"github.com/dom/superheroes-api/internal/repository/memory"
)

var heroSeq atomic.Int64

// HeroBuilder creates test heroes with a builder pattern
type HeroBuilder struct {
	id    domain.HeroID
	name  string
	image string
	stats domain.Powerstats
}

// NewHeroBuilder creates a new HeroBuilder with unique id and all stats at 50
func NewHeroBuilder() *HeroBuilder {
	n := heroSeq.Add(1) + 1000
	return &HeroBuilder{
		id:    domain.HeroID(fmt.Sprintf("%d", n)),
		name:  fmt.Sprintf("Test Hero %d", n),
		image: fmt.Sprintf("https://example.com/heroes/%d.jpg", n),
		stats: domain.Powerstats{
			Intelligence: domain.Stat(50),
			Strength:     domain.Stat(50),
			Speed:        domain.Stat(50),
			Durability:   domain.Stat(50),
			Power:        domain.Stat(50),
			Combat:       domain.Stat(50),
		},
	}
}

// WithID sets the id
func (b *HeroBuilder) WithID(id domain.HeroID) *HeroBuilder {
	b.id = id
	return b
}

// WithName sets the display name
func (b *HeroBuilder) WithName(name string) *HeroBuilder {
	b.name = name
	return b
}

// WithImage sets the image reference
func (b *HeroBuilder) WithImage(image string) *HeroBuilder {
	b.image = image
	return b
}

// WithStats sets all six stats in canonical order
func (b *HeroBuilder) WithStats(intelligence, strength, speed, durability, power, combat float64) *HeroBuilder {
	b.stats = domain.Powerstats{
		Intelligence: domain.Stat(intelligence),
		Strength:     domain.Stat(strength),
		Speed:        domain.Stat(speed),
		Durability:   domain.Stat(durability),
		Power:        domain.Stat(power),
		Combat:       domain.Stat(combat),
	}
	return b
}

// WithStat overrides a single stat
func (b *HeroBuilder) WithStat(c domain.Category, v domain.StatValue) *HeroBuilder {
	switch c {
	case domain.CategoryIntelligence:
		b.stats.Intelligence = v
	case domain.CategoryStrength:
		b.stats.Strength = v
	case domain.CategorySpeed:
		b.stats.Speed = v
	case domain.CategoryDurability:
		b.stats.Durability = v
	case domain.CategoryPower:
		b.stats.Power = v
	case domain.CategoryCombat:
		b.stats.Combat = v
	}
	return b
}

// Build returns the hero
func (b *HeroBuilder) Build() *domain.Hero {
	return &domain.Hero{
		ID:         b.id,
		Name:       b.name,
		Image:      b.image,
		Powerstats: b.stats,
	}
}

// NewTestCatalog builds an in-memory catalog and fails the test on error
func NewTestCatalog(t *testing.T, heroes ...*domain.Hero) *memory.Catalog {
	t.Helper()

	catalog, err := memory.NewCatalog(heroes)
	if err != nil {
		t.Fatalf("failed to build catalog: %v", err)
	}
	return catalog
}

// SampleHeroes returns the three heroes at the head of the bundled dataset
func SampleHeroes() []*domain.Hero {
	return []*domain.Hero{
		NewHeroBuilder().WithID("1").WithName("A-Bomb").
			WithImage("https://cdn.jsdelivr.net/gh/akabab/superhero-api@0.3.0/api/images/md/1-a-bomb.jpg").
			WithStats(38, 100, 17, 80, 24, 64).Build(),
		NewHeroBuilder().WithID("2").WithName("Abe Sapien").
			WithImage("https://cdn.jsdelivr.net/gh/akabab/superhero-api@0.3.0/api/images/md/2-abe-sapien.jpg").
			WithStats(100, 18, 23, 28, 32, 32).Build(),
		NewHeroBuilder().WithID("3").WithName("Abin Sur").
			WithImage("https://cdn.jsdelivr.net/gh/akabab/superhero-api@0.3.0/api/images/md/3-abin-sur.jpg").
			WithStats(50, 90, 53, 64, 99, 65).Build(),
	}
}
