package enrichment

import (
	"context"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
)

// RedisSequencer keeps one INCR counter per key.
type RedisSequencer struct {
	client redis.Cmdable
	prefix string
}

func NewRedisSequencer(client redis.Cmdable, prefix string) *RedisSequencer {
	if prefix == "" {
		prefix = "caseregistry:seq:"
	}
	return &RedisSequencer{client: client, prefix: prefix}
}

func (s *RedisSequencer) Next(ctx context.Context, key string) (int64, error) {
	n, err := s.client.Incr(ctx, s.prefix+key).Result()
	if err != nil {
		return 0, fmt.Errorf("incr %s: %w", key, err)
	}
	return n, nil
}

// MemorySequencer is the in-process Sequencer for tests and local runs.
type MemorySequencer struct {
	mu       sync.Mutex
	counters map[string]int64
}

func NewMemorySequencer() *MemorySequencer {
	return &MemorySequencer{counters: make(map[string]int64)}
}

func (s *MemorySequencer) Next(_ context.Context, key string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counters[key]++
	return s.counters[key], nil
}
