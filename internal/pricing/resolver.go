package pricing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/vantage-lane/pricing-engine/pkg/logger"
	"github.com/vantage-lane/pricing-engine/pkg/redis"
)

// configCacheKey holds the serialized active config snapshot
const configCacheKey = "pricing:config:active"

// defaultSnapshotTTL bounds how stale a cached snapshot can be. Admin
// edits invalidate the key explicitly, so the TTL only covers writes
// that bypass the API.
const defaultSnapshotTTL = 500 * time.Millisecond

// CachedResolver serves config snapshots from Redis, falling back to
// the database on a miss. Cache failures degrade to database reads so
// quoting never depends on Redis being up.
type CachedResolver struct {
	repo  RepositoryInterface
	cache *redis.Client
	ttl   time.Duration
}

// NewCachedResolver creates a resolver backed by the repository and an
// optional Redis cache. A nil cache disables caching entirely.
func NewCachedResolver(repo RepositoryInterface, cache *redis.Client, ttl time.Duration) *CachedResolver {
	if ttl <= 0 {
		ttl = defaultSnapshotTTL
	}
	return &CachedResolver{repo: repo, cache: cache, ttl: ttl}
}

// Resolve returns the active configuration snapshot
func (r *CachedResolver) Resolve(ctx context.Context) (*PricingConfig, error) {
	log := logger.WithContext(ctx)

	if r.cache != nil {
		raw, err := r.cache.GetString(ctx, configCacheKey)
		switch {
		case err == nil:
			var cfg PricingConfig
			unmarshalErr := json.Unmarshal([]byte(raw), &cfg)
			if unmarshalErr == nil {
				return &cfg, nil
			}
			log.Warn("discarding unreadable cached pricing config", zap.Error(unmarshalErr))
		case !errors.Is(err, goredis.Nil):
			log.Warn("pricing config cache read failed", zap.Error(err))
		}
	}

	cfg, err := r.repo.GetActiveConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve pricing config: %w", err)
	}

	if r.cache != nil {
		if raw, err := json.Marshal(cfg); err == nil {
			if err := r.cache.SetWithExpiration(ctx, configCacheKey, raw, r.ttl); err != nil {
				log.Warn("pricing config cache write failed", zap.Error(err))
			}
		}
	}

	return cfg, nil
}

// Invalidate drops the cached snapshot so the next quote reads the
// database
func (r *CachedResolver) Invalidate(ctx context.Context) error {
	if r.cache == nil {
		return nil
	}
	if err := r.cache.Delete(ctx, configCacheKey); err != nil {
		return fmt.Errorf("failed to invalidate pricing config cache: %w", err)
	}
	return nil
}
