// Package bootstrap assembles the catalog, cache and services shared by the
// server and MCP binaries.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/dom/superheroes-api/internal/cache"
	"github.com/dom/superheroes-api/internal/config"
	"github.com/dom/superheroes-api/internal/repository"
	"github.com/dom/superheroes-api/internal/repository/jsonfile"
	"github.com/dom/superheroes-api/internal/repository/memory"
	"github.com/dom/superheroes-api/internal/repository/postgres"
	"github.com/dom/superheroes-api/internal/service"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"
)

// App holds everything a binary needs once start-up has finished.
type App struct {
	Catalog  *memory.Catalog
	Services *service.Services

	redis *redis.Client
}

// New loads the dataset into memory and wires the services around it.
// The dataset comes from PostgreSQL when DATABASE_URL is set, otherwise
// from the JSON file at DATA_PATH.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	source, err := HeroSource(cfg)
	if err != nil {
		return nil, err
	}

	heroes, err := source.LoadHeroes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load heroes: %w", err)
	}

	catalog, err := memory.NewCatalog(heroes)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog: %w", err)
	}
	logger.Info("Hero catalog loaded", zap.Int("heroes", catalog.Len()), zap.String("version", catalog.Version()))

	app := &App{Catalog: catalog}

	var comparisons service.ComparisonCache
	if cfg.CacheEnabled() {
		client, err := cache.NewRedisClient(ctx, cfg.RedisURL, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		app.redis = client
		comparisons = cache.NewComparisonCache(client, cfg.CompareCacheTTL, catalog.Version(), logger)
	}

	app.Services = service.NewServices(catalog, comparisons, logger)
	return app, nil
}

// HeroSource picks where the dataset is read from.
func HeroSource(cfg *config.Config) (repository.HeroSource, error) {
	if cfg.DatabaseURL == "" {
		return jsonfile.NewSource(cfg.DataPath), nil
	}

	db, err := postgres.NewConnection(cfg.DatabaseURL, GormLogLevel(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return postgres.NewHeroRepository(db), nil
}

func GormLogLevel(cfg *config.Config) gormlogger.LogLevel {
	if cfg.Environment == "production" {
		return gormlogger.Silent
	}
	return gormlogger.Warn
}

func (a *App) Close() error {
	if a.redis != nil {
		return a.redis.Close()
	}
	return nil
}
