package cache

import (
	"context"
	"strings"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/roadtriplabs/fuelroute/internal/config"
)

type PlanCacheEntry struct {
	Data      string // Marshaled plan response body
	ExpiresAt time.Time
}

// PlanCache memoizes complete plan responses keyed by the normalized
// start/finish pair, so repeated requests for the same trip skip geocoding,
// routing and planning entirely.
type PlanCache struct {
	lru   *lru.Cache[string, *PlanCacheEntry]
	ttl   time.Duration
	clock clock
	mu    sync.RWMutex
}

func NewPlanCache(cfg *config.CacheConfig) (*PlanCache, error) {
	lruCache, err := lru.New[string, *PlanCacheEntry](cfg.PlanLRUSize)
	if err != nil {
		return nil, err
	}

	return &PlanCache{
		lru:   lruCache,
		ttl:   cfg.GetPlanLRUTTL(),
		clock: &systemClock{},
	}, nil
}

// PlanCacheKey builds the cache key for a trip request.
func PlanCacheKey(start, finish string) string {
	return strings.ToLower(strings.TrimSpace(start)) + "|" + strings.ToLower(strings.TrimSpace(finish))
}

func (c *PlanCache) Add(_ context.Context, key string, body string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lru.Add(key, &PlanCacheEntry{
		Data:      body,
		ExpiresAt: c.clock.Now().Add(c.ttl),
	})
}

func (c *PlanCache) Get(_ context.Context, key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.lru.Get(key)
	if !ok {
		return "", false
	}

	if c.clock.Now().After(entry.ExpiresAt) {
		c.lru.Remove(key)
		return "", false
	}

	return entry.Data, true
}

func (c *PlanCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lru.Purge()
}
