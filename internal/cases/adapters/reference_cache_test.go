package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"caseregistry/internal/cases/metrics"
	"caseregistry/internal/cases/models"
	"caseregistry/internal/cases/ports/mocks"
	"caseregistry/pkg/platform/circuit"
)

type mapCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	getErr  error
}

func newMapCache() *mapCache {
	return &mapCache{entries: make(map[string][]byte)}
}

func (c *mapCache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, c.getErr
	}
	v, ok := c.entries[key]
	if !ok {
		return nil, ErrCacheMiss
	}
	return v, nil
}

func (c *mapCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
	return nil
}

func categories() models.MasterData {
	return models.MasterData{"case": {"CaseCategory": {json.RawMessage(`{"code":"CIVIL"}`)}}}
}

func TestCachedReferenceData(t *testing.T) {
	ctx := context.Background()
	info := models.RequestInfo{}

	t.Run("second lookup is served from cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		next := mocks.NewMockReferenceData(ctrl)
		next.EXPECT().Fetch(gomock.Any(), info, "pg", "case", []string{"B", "A"}).Return(categories(), nil).Times(1)

		m := metrics.New(prometheus.NewRegistry())
		cached := NewCachedReferenceData(next, newMapCache(), time.Minute, nil, m)

		first, err := cached.Fetch(ctx, info, "pg", "case", []string{"B", "A"})
		require.NoError(t, err)
		second, err := cached.Fetch(ctx, info, "pg", "case", []string{"A", "B"})
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.InDelta(t, 1, testutil.ToFloat64(m.ReferenceCache.WithLabelValues("miss")), 0)
		assert.InDelta(t, 1, testutil.ToFloat64(m.ReferenceCache.WithLabelValues("hit")), 0)
	})

	t.Run("answers without the module are not cached", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		next := mocks.NewMockReferenceData(ctrl)
		next.EXPECT().Fetch(gomock.Any(), info, "pg", "case", []string{"A"}).Return(models.MasterData{}, nil).Times(2)

		cache := newMapCache()
		cached := NewCachedReferenceData(next, cache, time.Minute, nil, nil)
		for range 2 {
			_, err := cached.Fetch(ctx, info, "pg", "case", []string{"A"})
			require.NoError(t, err)
		}
		assert.Empty(t, cache.entries)
	})

	t.Run("cache faults fall through to the service", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		next := mocks.NewMockReferenceData(ctrl)
		next.EXPECT().Fetch(gomock.Any(), info, "pg", "case", []string{"A"}).Return(categories(), nil)

		cache := newMapCache()
		cache.getErr = errors.New("connection refused")
		cached := NewCachedReferenceData(next, cache, time.Minute, nil, nil)

		data, err := cached.Fetch(ctx, info, "pg", "case", []string{"A"})
		require.NoError(t, err)
		assert.Contains(t, data, "case")
	})

	t.Run("service errors are returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		next := mocks.NewMockReferenceData(ctrl)
		next.EXPECT().Fetch(gomock.Any(), info, "pg", "case", []string{"A"}).Return(nil, errors.New("mdms down"))

		cached := NewCachedReferenceData(next, newMapCache(), time.Minute, nil, nil)
		_, err := cached.Fetch(ctx, info, "pg", "case", []string{"A"})
		assert.ErrorContains(t, err, "mdms down")
	})
}

func TestCachedReferenceDataServesStaleWhileCircuitOpen(t *testing.T) {
	ctx := context.Background()
	info := models.RequestInfo{}
	ctrl := gomock.NewController(t)
	next := mocks.NewMockReferenceData(ctrl)
	outage := errors.New("mdms down")
	gomock.InOrder(
		next.EXPECT().Fetch(gomock.Any(), info, "pg", "case", []string{"A"}).Return(categories(), nil),
		next.EXPECT().Fetch(gomock.Any(), info, "pg", "case", []string{"A"}).Return(nil, outage).Times(2),
	)

	cache := newMapCache()
	breaker := circuit.New("mdms", circuit.WithFailureThreshold(2))
	cached := NewCachedReferenceData(next, cache, time.Minute, nil, nil, WithBreaker(breaker))

	_, err := cached.Fetch(ctx, info, "pg", "case", []string{"A"})
	require.NoError(t, err)
	delete(cache.entries, referenceKey("pg", "case", []string{"A"}))

	_, err = cached.Fetch(ctx, info, "pg", "case", []string{"A"})
	require.ErrorIs(t, err, outage, "closed circuit returns the failure")

	data, err := cached.Fetch(ctx, info, "pg", "case", []string{"A"})
	require.NoError(t, err)
	assert.True(t, breaker.IsOpen())
	assert.Contains(t, data, "case")
}

func TestReferenceKeyIgnoresMasterOrder(t *testing.T) {
	assert.Equal(t,
		referenceKey("pg", "case", []string{"B", "A"}),
		referenceKey("pg", "case", []string{"A", "B"}))
}
