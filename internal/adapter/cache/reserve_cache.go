// Package cache provides the TTL'd reserve cache that sits in front of the
// rate engine. It satisfies the narrow domain.ReserveCache interface so the
// pure calculation code never sees cache state.
package cache

import (
	"time"

	"github.com/dgraph-io/ristretto"

	"github.com/soroyield/soroyield-backend/internal/domain"
)

// ReserveCache caches decoded reserves by asset ID with a fixed TTL.
// Entries expire rather than invalidate: a stale reserve is replaced
// wholesale by the next ingested snapshot, never patched.
type ReserveCache struct {
	cache *ristretto.Cache
	ttl   time.Duration
}

// NewReserveCache creates a reserve cache whose entries live for ttl.
// Pools carry at most a few dozen reserves, so the cache is sized far
// below ristretto's sweet spot; the admission policy effectively keeps
// everything until expiry.
func NewReserveCache(ttl time.Duration) (*ReserveCache, error) {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10_000,
		MaxCost:     1_000,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &ReserveCache{cache: c, ttl: ttl}, nil
}

// Get returns the cached reserve for an asset, if still fresh
func (c *ReserveCache) Get(assetID string) (*domain.Reserve, bool) {
	v, ok := c.cache.Get(assetID)
	if !ok {
		return nil, false
	}
	reserve, ok := v.(*domain.Reserve)
	return reserve, ok
}

// Put stores a freshly decoded reserve, replacing any previous entry.
// Wait flushes ristretto's set buffer so a snapshot just ingested is
// immediately readable by the next RPC.
func (c *ReserveCache) Put(reserve *domain.Reserve) {
	c.cache.SetWithTTL(reserve.AssetID, reserve, 1, c.ttl)
	c.cache.Wait()
}

// Close releases the cache's internal goroutines
func (c *ReserveCache) Close() {
	c.cache.Close()
}
