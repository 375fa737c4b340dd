package repository

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"foodshare/internal/model"
)

// cacheEntry pairs a memoized result with the time it was stored.
type cacheEntry struct {
	result   *model.ResultSet
	storedAt time.Time
}

// queryCache memoizes read results keyed by statement text and bound
// arguments. Entries expire lazily once the TTL passes; a write clears
// the whole cache.
type queryCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]cacheEntry
	now     func() time.Time
}

func newQueryCache(ttl time.Duration) *queryCache {
	return &queryCache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}

// Get returns the memoized result for key when present and fresh.
func (c *queryCache) Get(key string) (*model.ResultSet, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}

	if c.now().Sub(entry.storedAt) > c.ttl {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return nil, false
	}

	return entry.result, true
}

// Put stores a result under key.
func (c *queryCache) Put(key string, rs *model.ResultSet) {
	c.mu.Lock()
	c.entries[key] = cacheEntry{result: rs, storedAt: c.now()}
	c.mu.Unlock()
}

// Clear drops every entry.
func (c *queryCache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]cacheEntry)
	c.mu.Unlock()
}

// Len returns the number of stored entries. Expired entries count until
// a Get touches them.
func (c *queryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// cacheKey builds the memoization key from the statement text and its
// arguments. The unit separator keeps argument boundaries unambiguous.
func cacheKey(query string, args []any) string {
	if len(args) == 0 {
		return query
	}

	var b strings.Builder
	b.WriteString(query)
	for _, arg := range args {
		b.WriteByte(0x1f)
		fmt.Fprintf(&b, "%v", arg)
	}
	return b.String()
}
