package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultSize is the entry limit used when NewLRU is given a non-positive size.
const DefaultSize = 4096

// LRU is a bounded cache evicting the least recently used entry.
type LRU struct {
	entries *lru.Cache[Key, float64]
	counters
}

// NewLRU creates an LRU cache holding at most size entries.
func NewLRU(size int) *LRU {
	if size <= 0 {
		size = DefaultSize
	}
	// lru.New only fails for a non-positive size.
	entries, _ := lru.New[Key, float64](size)
	return &LRU{entries: entries}
}

// Get returns the cached width for key and marks it recently used.
func (c *LRU) Get(key Key) (float64, bool) {
	w, ok := c.entries.Get(key)
	c.record(ok)
	return w, ok
}

// Set stores width for key, evicting the oldest entry when full.
func (c *LRU) Set(key Key, width float64) {
	c.entries.Add(key, width)
}

// Len returns the number of cached entries.
func (c *LRU) Len() int { return c.entries.Len() }

// Stats returns the hit and miss counts.
func (c *LRU) Stats() Stats { return c.stats() }

// Purge removes every entry. Counters are kept.
func (c *LRU) Purge() { c.entries.Purge() }

var _ Cache = (*LRU)(nil)
