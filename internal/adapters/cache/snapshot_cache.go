package cache

import (
	"fmt"
	"time"

	"ratebank/internal/domain"

	"github.com/dgraph-io/ristretto"
)

// RistrettoSnapshotCache holds the latest fallback rate table for one store key.
type RistrettoSnapshotCache struct {
	cache *ristretto.Cache
	key   string
	ttl   time.Duration
}

// NewSnapshotCache caches snapshots under key for ttl. A non-positive ttl keeps them
// until Clear or eviction.
func NewSnapshotCache(key string, ttl time.Duration, maxItems int64) (*RistrettoSnapshotCache, error) {
	if maxItems <= 0 {
		maxItems = 16
	}
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10 * maxItems,
		MaxCost:     maxItems,
		BufferItems: 64,
		// cost is counted in snapshots, one per Set
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("create snapshot cache failed: %w", err)
	}
	return &RistrettoSnapshotCache{cache: c, key: key, ttl: ttl}, nil
}

func (c *RistrettoSnapshotCache) Get() (domain.RateTable, bool) {
	if v, ok := c.cache.Get(c.key); ok {
		table, ok := v.(domain.RateTable)
		return table, ok
	}
	return nil, false
}

// Set stores table and waits for the write to be applied, so the next Get sees it.
func (c *RistrettoSnapshotCache) Set(table domain.RateTable) {
	if c.ttl > 0 {
		c.cache.SetWithTTL(c.key, table, 1, c.ttl)
	} else {
		c.cache.Set(c.key, table, 1)
	}
	c.cache.Wait()
}

func (c *RistrettoSnapshotCache) Clear() { c.cache.Del(c.key) }

func (c *RistrettoSnapshotCache) Close() { c.cache.Close() }
