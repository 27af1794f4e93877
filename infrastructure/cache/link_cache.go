// Package cache provides the process-wide, TTL-bounded memoization of
// article link lists. The cache outlives individual searches; everything
// else in a search is request-scoped.
package cache

import (
	"sync"
	"time"
)

const janitorInterval = time.Minute

// LinkCache is an in-memory TTL cache mapping an article title, exactly as
// queried, to its outbound link titles. Entries expire a fixed duration
// after insertion and behave as absent once expired. Safe for concurrent
// use; a racing Set on the same key is last-write-wins, which is fine
// because a title's links are treated as stable within the TTL window.
type LinkCache struct {
	mu    sync.RWMutex
	items map[string]entry
	ttl   time.Duration
	now   func() time.Time
}

type entry struct {
	links     []string
	expiresAt time.Time
}

// NewLinkCache creates a link cache whose entries expire ttl after insertion.
func NewLinkCache(ttl time.Duration) *LinkCache {
	c := &LinkCache{
		items: make(map[string]entry),
		ttl:   ttl,
		now:   time.Now,
	}

	go c.cleanupExpired()

	return c
}

// newLinkCacheWithClock is used by tests to drive expiry deterministically.
func newLinkCacheWithClock(ttl time.Duration, now func() time.Time) *LinkCache {
	return &LinkCache{
		items: make(map[string]entry),
		ttl:   ttl,
		now:   now,
	}
}

// Get returns the cached links for title, or false if absent or expired.
func (c *LinkCache) Get(title string) ([]string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, exists := c.items[title]
	if !exists {
		return nil, false
	}
	if c.now().After(e.expiresAt) {
		return nil, false
	}
	return e.links, true
}

// Set stores links for title, resetting its expiry. Empty link lists are
// cached too, so a dead-end article is not refetched within the TTL.
func (c *LinkCache) Set(title string, links []string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[title] = entry{
		links:     links,
		expiresAt: c.now().Add(c.ttl),
	}
}

// Len returns the number of entries currently held, expired or not.
func (c *LinkCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// cleanupExpired periodically removes expired items so a long-lived process
// does not accumulate every title it has ever fetched.
func (c *LinkCache) cleanupExpired() {
	ticker := time.NewTicker(janitorInterval)
	defer ticker.Stop()

	for range ticker.C {
		c.mu.Lock()
		now := c.now()
		for title, e := range c.items {
			if now.After(e.expiresAt) {
				delete(c.items, title)
			}
		}
		c.mu.Unlock()
	}
}
