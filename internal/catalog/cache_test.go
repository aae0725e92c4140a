package catalog

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brimline/capquote/internal/domain"
)

type stubSource struct {
	loads int64
	delay time.Duration
	err   error
}

func (s *stubSource) Load(ctx context.Context) (*Snapshot, error) {
	atomic.AddInt64(&s.loads, 1)
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	if s.err != nil {
		return nil, s.err
	}
	return NewSnapshot([]domain.PriceRow{
		{Name: "Standard Cap", Category: domain.CategoryBaseProduct,
			Prices: map[int]decimal.Decimal{48: decimal.RequireFromString("4.50")}},
	}), nil
}

func TestCache_LoadOnce(t *testing.T) {
	src := &stubSource{}
	cache := NewCache(src)

	ctx := context.Background()
	first, err := cache.Load(ctx)
	require.NoError(t, err)
	second, err := cache.Load(ctx)
	require.NoError(t, err)

	assert.Same(t, first, second, "warm cache must serve the same snapshot")
	assert.Equal(t, int64(1), atomic.LoadInt64(&src.loads))
}

func TestCache_SingleFlightOnColdCache(t *testing.T) {
	src := &stubSource{delay: 20 * time.Millisecond}
	cache := NewCache(src)

	const callers = 16
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := cache.Load(context.Background())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), atomic.LoadInt64(&src.loads),
		"concurrent cold-cache callers must share one load")
}

func TestCache_TTLExpiryReloads(t *testing.T) {
	src := &stubSource{}
	now := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	cache := NewCache(src, WithTTL(time.Hour), WithClock(func() time.Time { return now }))

	ctx := context.Background()
	_, err := cache.Load(ctx)
	require.NoError(t, err)

	now = now.Add(30 * time.Minute)
	_, err = cache.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), atomic.LoadInt64(&src.loads))

	now = now.Add(31 * time.Minute)
	_, err = cache.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), atomic.LoadInt64(&src.loads), "expired snapshot must reload")
}

func TestCache_InvalidateForcesReload(t *testing.T) {
	src := &stubSource{}
	cache := NewCache(src)

	ctx := context.Background()
	_, err := cache.Load(ctx)
	require.NoError(t, err)

	cache.Invalidate()
	_, err = cache.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), atomic.LoadInt64(&src.loads))
}

func TestCache_SourceErrorPropagates(t *testing.T) {
	src := &stubSource{err: errors.New("sheet unreachable")}
	cache := NewCache(src)

	_, err := cache.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sheet unreachable")

	// A failed load caches nothing.
	src.err = nil
	snap, err := cache.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, snap)
}
