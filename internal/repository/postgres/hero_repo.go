package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dom/superheroes-api/internal/domain"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// heroRecord is the persisted form of a hero. Powerstats stay as raw jsonb so
// loosely typed stat values survive a round trip unchanged.
type heroRecord struct {
	ID         string         `gorm:"primaryKey"`
	Position   int            `gorm:"not null;index"` // order within the source dataset
	Name       string         `gorm:"not null;index"`
	Image      string         `gorm:"not null"`
	Powerstats datatypes.JSON `gorm:"type:jsonb"`
	UpdatedAt  time.Time
}

func (heroRecord) TableName() string {
	return "superheroes"
}

func toRecord(position int, h *domain.Hero) (*heroRecord, error) {
	stats, err := json.Marshal(h.Powerstats)
	if err != nil {
		return nil, fmt.Errorf("failed to encode powerstats for hero %s: %w", h.ID, err)
	}
	return &heroRecord{
		ID:         h.ID.String(),
		Position:   position,
		Name:       h.Name,
		Image:      h.Image,
		Powerstats: datatypes.JSON(stats),
	}, nil
}

func (r *heroRecord) toDomain() (*domain.Hero, error) {
	hero := &domain.Hero{
		ID:    domain.HeroID(r.ID),
		Name:  r.Name,
		Image: r.Image,
	}
	if len(r.Powerstats) > 0 {
		if err := json.Unmarshal(r.Powerstats, &hero.Powerstats); err != nil {
			return nil, fmt.Errorf("failed to decode powerstats for hero %s: %w", r.ID, err)
		}
	}
	return hero, nil
}

type heroRepository struct {
	db *gorm.DB
}

func NewHeroRepository(db *gorm.DB) *heroRepository {
	return &heroRepository{db: db}
}

// UpsertMany stores heroes keyed by id. Slice order becomes dataset order.
// Rows for ids not in heroes are left alone; use ReplaceAll to load a full
// dataset.
func (r *heroRepository) UpsertMany(ctx context.Context, heroes []*domain.Hero) error {
	return upsert(r.db.WithContext(ctx), heroes)
}

// ReplaceAll swaps the stored dataset for heroes in one transaction, so
// readers see either the old rows or the new ones.
func (r *heroRepository) ReplaceAll(ctx context.Context, heroes []*domain.Hero) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&heroRecord{}).Error; err != nil {
			return fmt.Errorf("failed to clear superheroes: %w", err)
		}
		return upsert(tx, heroes)
	})
}

func upsert(db *gorm.DB, heroes []*domain.Hero) error {
	if len(heroes) == 0 {
		return nil
	}

	records := make([]*heroRecord, len(heroes))
	for i, h := range heroes {
		rec, err := toRecord(i, h)
		if err != nil {
			return err
		}
		records[i] = rec
	}

	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).CreateInBatches(records, 200).Error
}

func (r *heroRepository) GetAll(ctx context.Context) ([]*domain.Hero, error) {
	var records []*heroRecord
	err := r.db.WithContext(ctx).Order("position ASC").Order("id ASC").Find(&records).Error
	if err != nil {
		return nil, err
	}

	heroes := make([]*domain.Hero, len(records))
	for i, rec := range records {
		h, err := rec.toDomain()
		if err != nil {
			return nil, err
		}
		heroes[i] = h
	}
	return heroes, nil
}

func (r *heroRepository) GetByID(ctx context.Context, id domain.HeroID) (*domain.Hero, error) {
	var rec heroRecord
	err := r.db.WithContext(ctx).First(&rec, "id = ?", id.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrHeroNotFound
		}
		return nil, err
	}
	return rec.toDomain()
}

// LoadHeroes reads the whole table so it can be served from memory.
func (r *heroRepository) LoadHeroes(ctx context.Context) ([]*domain.Hero, error) {
	heroes, err := r.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load heroes from database: %w", err)
	}
	return heroes, nil
}
