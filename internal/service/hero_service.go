package service

import (
	"context"

	"github.com/dom/superheroes-api/internal/domain"
	"github.com/dom/superheroes-api/internal/repository"
	"go.uber.org/zap"
)

// ComparisonCache stores finished comparisons. Entries are keyed by the
// requested id pair in order.
type ComparisonCache interface {
	Get(ctx context.Context, idA, idB domain.HeroID) (*domain.ComparisonResult, bool, error)
	Set(ctx context.Context, result *domain.ComparisonResult) error
}

type HeroService struct {
	catalog repository.HeroCatalog
	cache   ComparisonCache
	logger  *zap.Logger
}

// NewHeroService wires the catalog the adapters read from. cache may be nil.
func NewHeroService(catalog repository.HeroCatalog, cache ComparisonCache, logger *zap.Logger) *HeroService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HeroService{
		catalog: catalog,
		cache:   cache,
		logger:  logger,
	}
}

func (s *HeroService) ListHeroes(ctx context.Context) []*domain.Hero {
	return s.catalog.All()
}

func (s *HeroService) GetHero(ctx context.Context, id domain.HeroID) (*domain.Hero, error) {
	hero, ok := s.catalog.FindByID(id)
	if !ok {
		return nil, domain.ErrHeroNotFound
	}
	return hero, nil
}

func (s *HeroService) GetPowerstats(ctx context.Context, id domain.HeroID) (domain.Powerstats, error) {
	hero, err := s.GetHero(ctx, id)
	if err != nil {
		return domain.Powerstats{}, err
	}
	return hero.Powerstats, nil
}

// FindHero resolves a hero by id or by case-insensitive name.
func (s *HeroService) FindHero(ctx context.Context, id domain.HeroID, name string) (*domain.Hero, error) {
	hero, ok := s.catalog.FindByIDOrName(id, name)
	if !ok {
		return nil, domain.ErrHeroNotFound
	}
	return hero, nil
}

// Compare runs the comparison engine against the catalog. Validation always
// runs first so a cached entry can never mask a bad request. Cache errors
// are logged and otherwise ignored.
func (s *HeroService) Compare(ctx context.Context, idA, idB domain.HeroID) (*domain.ComparisonResult, error) {
	if err := ValidateComparison(idA, idB); err != nil {
		return nil, err
	}

	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx, idA, idB)
		if err != nil {
			s.logger.Warn("Comparison cache read failed",
				zap.String("id1", idA.String()),
				zap.String("id2", idB.String()),
				zap.Error(err),
			)
		} else if ok && cached.HeroA == idA && cached.HeroB == idB {
			return cached, nil
		}
	}

	result, err := Compare(idA, idB, s.catalog)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, result); err != nil {
			s.logger.Warn("Comparison cache write failed",
				zap.String("id1", idA.String()),
				zap.String("id2", idB.String()),
				zap.Error(err),
			)
		}
	}

	return result, nil
}
