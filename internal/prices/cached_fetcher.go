package prices

import (
	"context"
	"folio/internal/domain"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

type cacheEntry struct {
	matrix  *domain.PriceMatrix
	expires time.Time
}

// cachedFetcher keeps recent matrices in memory for ttl and
// coalesces concurrent requests for the same symbols and start date.
type cachedFetcher struct {
	fetcher PriceFetcher
	ttl     time.Duration
	now     func() time.Time
	logger  zerolog.Logger

	mu      sync.RWMutex
	entries map[string]cacheEntry
	group   singleflight.Group
}

func NewCachedFetcher(fetcher PriceFetcher, ttl time.Duration, logger zerolog.Logger) PriceFetcher {
	return &cachedFetcher{
		fetcher: fetcher,
		ttl:     ttl,
		now:     time.Now,
		logger:  logger.With().Str("component", "price_cache").Logger(),
		entries: map[string]cacheEntry{},
	}
}

func cacheKey(symbols []string, start time.Time) string {
	sorted := append([]string{}, symbols...)
	sort.Strings(sorted)
	return start.UTC().Format(time.DateOnly) + ":" + strings.Join(sorted, ",")
}

func (c *cachedFetcher) get(key string) (*domain.PriceMatrix, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	if !ok || c.now().After(e.expires) {
		return nil, false
	}
	return e.matrix, true
}

func (c *cachedFetcher) put(key string, m *domain.PriceMatrix) {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	for k, e := range c.entries {
		if now.After(e.expires) {
			delete(c.entries, k)
		}
	}
	c.entries[key] = cacheEntry{matrix: m, expires: now.Add(c.ttl)}
}

func (c *cachedFetcher) FetchPrices(ctx context.Context, symbols []string, start time.Time) (*domain.PriceMatrix, error) {
	key := cacheKey(symbols, start)
	if m, ok := c.get(key); ok {
		c.logger.Debug().Str("key", key).Msg("cache hit")
		return m, nil
	}

	result, err, shared := c.group.Do(key, func() (interface{}, error) {
		m, err := c.fetcher.FetchPrices(ctx, symbols, start)
		if err != nil {
			return nil, err
		}
		c.put(key, m)
		return m, nil
	})
	if err != nil {
		return nil, err
	}
	c.logger.Debug().Str("key", key).Bool("shared", shared).Msg("cache miss")
	return result.(*domain.PriceMatrix), nil
}
