package labels

import (
	"github.com/matzehuels/loracharts/pkg/cache"
)

// CachedMeasurer memoizes another measurer. Fonts are normalized before the
// lookup, so a zero Font and the explicit defaults share entries.
type CachedMeasurer struct {
	next  TextMeasurer
	cache cache.Cache
}

// NewCachedMeasurer wraps next with c. A nil next measures with the heuristic;
// a nil c uses a default-sized LRU.
func NewCachedMeasurer(next TextMeasurer, c cache.Cache) *CachedMeasurer {
	if next == nil {
		next = HeuristicMeasurer{}
	}
	if c == nil {
		c = cache.NewLRU(0)
	}
	return &CachedMeasurer{next: next, cache: c}
}

// Measure implements TextMeasurer.
func (m *CachedMeasurer) Measure(text string, f Font) float64 {
	f = f.withDefaults()
	key := cache.Key{Text: text, Size: f.Size, Family: f.Family}
	if w, ok := m.cache.Get(key); ok {
		return w
	}
	w := m.next.Measure(text, f)
	m.cache.Set(key, w)
	return w
}

// Stats returns the underlying cache counters.
func (m *CachedMeasurer) Stats() cache.Stats { return m.cache.Stats() }
