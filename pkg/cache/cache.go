// Package cache memoizes text measurements.
//
// Measuring a label with a real font face costs a face construction and a
// glyph walk, and axis layout measures the same labels on every render. The
// caches here map (text, size, family) to the measured width.
//
// # Implementations
//
//   - [LRU]: bounded, in-memory, safe for concurrent use
//   - [NullCache]: stores nothing, for disabling caching
package cache

import "sync/atomic"

// Key identifies one measurement.
type Key struct {
	Text   string
	Size   float64
	Family string
}

// Cache stores measured widths. Implementations must be safe for concurrent use.
type Cache interface {
	// Get returns the cached width for key.
	Get(key Key) (float64, bool)
	// Set stores width for key.
	Set(key Key, width float64)
	// Len returns the number of cached entries.
	Len() int
	// Stats returns the hit and miss counts since creation.
	Stats() Stats
}

// Stats are cache lookup counters.
type Stats struct {
	Hits   uint64 `json:"hits"`
	Misses uint64 `json:"misses"`
}

// HitRatio returns hits / (hits + misses), or 0 before the first lookup.
func (s Stats) HitRatio() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

type counters struct {
	hits, misses atomic.Uint64
}

func (c *counters) record(hit bool) {
	if hit {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
}

func (c *counters) stats() Stats {
	return Stats{Hits: c.hits.Load(), Misses: c.misses.Load()}
}
