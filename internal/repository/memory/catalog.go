package memory

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dom/superheroes-api/internal/domain"
)

// Catalog is an immutable in-memory index of heroes. It is built once and
// never modified, so concurrent readers need no locking.
type Catalog struct {
	heroes  []*domain.Hero
	byID    map[domain.HeroID]*domain.Hero
	version string
}

func NewCatalog(heroes []*domain.Hero) (*Catalog, error) {
	c := &Catalog{
		heroes: make([]*domain.Hero, 0, len(heroes)),
		byID:   make(map[domain.HeroID]*domain.Hero, len(heroes)),
	}

	for i, h := range heroes {
		if h == nil {
			return nil, fmt.Errorf("hero at index %d is nil", i)
		}
		if h.ID.IsBlank() {
			return nil, fmt.Errorf("hero at index %d (%q): %w", i, h.Name, domain.ErrMissingHeroID)
		}
		if _, exists := c.byID[h.ID]; exists {
			return nil, fmt.Errorf("hero %s at index %d: %w", h.ID, i, domain.ErrDuplicateHeroID)
		}

		c.byID[h.ID] = h
		c.heroes = append(c.heroes, h)
	}

	encoded, err := json.Marshal(c.heroes)
	if err != nil {
		return nil, fmt.Errorf("failed to fingerprint catalog: %w", err)
	}
	sum := sha256.Sum256(encoded)
	c.version = hex.EncodeToString(sum[:8])

	return c, nil
}

// Version fingerprints the loaded dataset. Any change to a hero, or to the
// dataset order, yields a different version.
func (c *Catalog) Version() string {
	return c.version
}

func (c *Catalog) FindByID(id domain.HeroID) (*domain.Hero, bool) {
	h, ok := c.byID[id]
	return h, ok
}

// FindByName matches names case-insensitively. The first hero in dataset
// order wins when names collide.
func (c *Catalog) FindByName(name string) (*domain.Hero, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, false
	}
	for _, h := range c.heroes {
		if strings.EqualFold(h.Name, name) {
			return h, true
		}
	}
	return nil, false
}

// FindByIDOrName returns the first hero, in dataset order, whose name or id
// matches. Empty arguments are ignored.
func (c *Catalog) FindByIDOrName(id domain.HeroID, name string) (*domain.Hero, bool) {
	name = strings.TrimSpace(name)
	for _, h := range c.heroes {
		if name != "" && strings.EqualFold(h.Name, name) {
			return h, true
		}
		if id != "" && h.ID == id {
			return h, true
		}
	}
	return nil, false
}

// All returns heroes in dataset order. The slice is a copy; the heroes are
// shared and must not be modified.
func (c *Catalog) All() []*domain.Hero {
	out := make([]*domain.Hero, len(c.heroes))
	copy(out, c.heroes)
	return out
}

func (c *Catalog) Len() int {
	return len(c.heroes)
}
