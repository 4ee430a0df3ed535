package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dom/superheroes-api/internal/domain"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const keyPrefix = "superheroes:compare"

// NewRedisClient parses a redis:// URL and verifies the server answers.
func NewRedisClient(ctx context.Context, url string, logger *zap.Logger) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}
	opts.MaxRetries = 3
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", opts.Addr, err)
	}

	logger.Info("Redis connected",
		zap.String("addr", opts.Addr),
		zap.Int("db", opts.DB),
	)
	return client, nil
}

// ComparisonCache keeps serialized comparison results in Redis. Entries
// outlive the process, so keys carry the dataset version: a server started
// on re-seeded data never reads results computed from the old heroes.
type ComparisonCache struct {
	client  *redis.Client
	ttl     time.Duration
	version string
	logger  *zap.Logger
}

func NewComparisonCache(client *redis.Client, ttl time.Duration, version string, logger *zap.Logger) *ComparisonCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ComparisonCache{
		client:  client,
		ttl:     ttl,
		version: version,
		logger:  logger,
	}
}

// Key returns the cache key for an ordered id pair under a dataset version.
// The first id is length-prefixed, so ids containing ':' cannot collide.
func Key(version string, idA, idB domain.HeroID) string {
	return fmt.Sprintf("%s:%s:%d:%s:%s", keyPrefix, version, len(idA), idA, idB)
}

func (c *ComparisonCache) Get(ctx context.Context, idA, idB domain.HeroID) (*domain.ComparisonResult, bool, error) {
	key := Key(c.version, idA, idB)
	value, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache get %s: %w", key, err)
	}

	var result domain.ComparisonResult
	if err := json.Unmarshal(value, &result); err != nil || result.HeroA != idA || result.HeroB != idB {
		c.logger.Warn("Dropping unusable cache entry", zap.String("key", key), zap.Error(err))
		c.client.Del(ctx, key)
		return nil, false, nil
	}
	return &result, true, nil
}

func (c *ComparisonCache) Set(ctx context.Context, result *domain.ComparisonResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}

	key := Key(c.version, result.HeroA, result.HeroB)
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}
