package player

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/kettlewell/stranded/internal/domain"
)

// CacheConfig controls the player cache
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// DefaultCacheConfig returns sensible cache defaults
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{
		Size: 1024,
		TTL:  5 * time.Minute,
	}
}

// playerCache provides an in-memory LRU cache for player lookups with
// time-based expiration. Every counter change persists through the service,
// which refreshes the entry, so a hit is always as fresh as the last write
// made by this process.
type playerCache struct {
	lru *expirable.LRU[string, *domain.Player]
}

func newPlayerCache(config CacheConfig) *playerCache {
	return &playerCache{
		lru: expirable.NewLRU[string, *domain.Player](config.Size, nil, config.TTL),
	}
}

// Get retrieves a copy of the cached player, if present.
func (c *playerCache) Get(playerID string) (*domain.Player, bool) {
	p, found := c.lru.Get(playerID)
	if !found {
		return nil, false
	}
	clone := *p
	return &clone, true
}

// Set stores a copy of the player.
func (c *playerCache) Set(p *domain.Player) {
	clone := *p
	c.lru.Add(p.ID, &clone)
}

// Invalidate removes a player from the cache.
func (c *playerCache) Invalidate(playerID string) {
	c.lru.Remove(playerID)
}

// Len returns the number of cached players.
func (c *playerCache) Len() int {
	return c.lru.Len()
}
