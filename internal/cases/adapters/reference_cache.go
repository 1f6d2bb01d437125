package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"caseregistry/internal/cases/metrics"
	"caseregistry/internal/cases/models"
	"caseregistry/internal/cases/ports"
	"caseregistry/pkg/platform/circuit"
)

// ErrCacheMiss is returned by a Cache for an absent key.
var ErrCacheMiss = errors.New("cache miss")

type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// RedisCache adapts go-redis to Cache.
type RedisCache struct {
	client redis.Cmdable
}

func NewRedisCache(client redis.Cmdable) *RedisCache {
	return &RedisCache{client: client}
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	return b, err
}

func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}

// CachedReferenceData serves reference data from a cache in front of the
// master data service. Cache faults fall through to the service.
//
// Every answer is also kept under a stale key with a longer TTL. While the
// breaker is open, service failures are answered from the stale copy.
type CachedReferenceData struct {
	next     ports.ReferenceData
	cache    Cache
	ttl      time.Duration
	staleTTL time.Duration
	breaker  *circuit.Breaker
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

var _ ports.ReferenceData = (*CachedReferenceData)(nil)

type CacheOption func(*CachedReferenceData)

// WithStaleTTL sets how long the stale copy is kept (default 24h).
func WithStaleTTL(ttl time.Duration) CacheOption {
	return func(c *CachedReferenceData) {
		if ttl > 0 {
			c.staleTTL = ttl
		}
	}
}

func WithBreaker(b *circuit.Breaker) CacheOption {
	return func(c *CachedReferenceData) {
		if b != nil {
			c.breaker = b
		}
	}
}

func NewCachedReferenceData(next ports.ReferenceData, cache Cache, ttl time.Duration, logger *slog.Logger, m *metrics.Metrics, opts ...CacheOption) *CachedReferenceData {
	if logger == nil {
		logger = slog.Default()
	}
	c := &CachedReferenceData{
		next:     next,
		cache:    cache,
		ttl:      ttl,
		staleTTL: 24 * time.Hour,
		breaker:  circuit.New("mdms"),
		logger:   logger,
		metrics:  m,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *CachedReferenceData) Fetch(ctx context.Context, info models.RequestInfo, tenantID, module string, masters []string) (models.MasterData, error) {
	key := referenceKey(tenantID, module, masters)

	raw, err := c.cache.Get(ctx, key)
	switch {
	case err == nil:
		var data models.MasterData
		if jerr := json.Unmarshal(raw, &data); jerr == nil {
			c.metrics.IncrementReferenceCache(true)
			return data, nil
		}
		c.logger.WarnContext(ctx, "discarding undecodable reference cache entry", "key", key)
	case !errors.Is(err, ErrCacheMiss):
		c.logger.WarnContext(ctx, "reference cache read failed", "key", key, "error", err)
	}
	c.metrics.IncrementReferenceCache(false)

	data, err := c.next.Fetch(ctx, info, tenantID, module, masters)
	if err != nil {
		return c.fallback(ctx, key, err)
	}
	if _, change := c.breaker.RecordSuccess(); change.Closed {
		c.logger.InfoContext(ctx, "reference data circuit closed", "breaker", c.breaker.Name())
	}
	// Answers without the module are not cached.
	if _, ok := data[module]; !ok {
		return data, nil
	}
	encoded, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("encode reference data: %w", err)
	}
	if err := c.cache.Set(ctx, key, encoded, c.ttl); err != nil {
		c.logger.WarnContext(ctx, "reference cache write failed", "key", key, "error", err)
	}
	if err := c.cache.Set(ctx, staleKey(key), encoded, c.staleTTL); err != nil {
		c.logger.WarnContext(ctx, "reference cache write failed", "key", staleKey(key), "error", err)
	}
	return data, nil
}

func (c *CachedReferenceData) fallback(ctx context.Context, key string, cause error) (models.MasterData, error) {
	useFallback, change := c.breaker.RecordFailure()
	if change.Opened {
		c.logger.WarnContext(ctx, "reference data circuit opened",
			"breaker", c.breaker.Name(),
			"error", cause,
		)
	}
	if !useFallback {
		return nil, cause
	}
	raw, err := c.cache.Get(ctx, staleKey(key))
	if err != nil {
		return nil, cause
	}
	var data models.MasterData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, cause
	}
	c.logger.WarnContext(ctx, "serving stale reference data", "key", key)
	return data, nil
}

func staleKey(key string) string {
	return key + ":stale"
}

func referenceKey(tenantID, module string, masters []string) string {
	sorted := slices.Clone(masters)
	slices.Sort(sorted)
	return fmt.Sprintf("caseregistry:mdms:%s:%s:%s", tenantID, module, strings.Join(sorted, ","))
}
