package service

import (
	"github.com/dom/superheroes-api/internal/repository"
	"go.uber.org/zap"
)

type Services struct {
	Hero *HeroService
}

func NewServices(catalog repository.HeroCatalog, cache ComparisonCache, logger *zap.Logger) *Services {
	return &Services{
		Hero: NewHeroService(catalog, cache, logger),
	}
}
