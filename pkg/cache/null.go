package cache

// NullCache is a no-op cache that never stores anything.
// Every lookup is counted as a miss.
type NullCache struct {
	counters
}

// NewNullCache creates a null cache.
func NewNullCache() *NullCache {
	return &NullCache{}
}

// Get always returns a cache miss.
func (c *NullCache) Get(Key) (float64, bool) {
	c.record(false)
	return 0, false
}

// Set does nothing.
func (c *NullCache) Set(Key, float64) {}

// Len is always 0.
func (c *NullCache) Len() int { return 0 }

// Stats returns the miss count.
func (c *NullCache) Stats() Stats { return c.stats() }

var _ Cache = (*NullCache)(nil)
