package scale

import "sync"

// Ordinal assigns range values to keys in the order keys are first seen,
// cycling through the range when there are more keys than values.
// It is safe for concurrent use.
type Ordinal[V any] struct {
	mu    sync.Mutex
	rng   []V
	index map[string]int
	keys  []string
}

// NewOrdinal returns an ordinal scale over rng, pre-seeded with keys.
func NewOrdinal[V any](rng []V, keys ...string) *Ordinal[V] {
	o := &Ordinal[V]{rng: append([]V(nil), rng...), index: make(map[string]int)}
	for _, k := range keys {
		o.lookup(k)
	}
	return o
}

// Map returns the value for key, assigning the next one if key is new.
// With an empty range the zero value is returned.
func (o *Ordinal[V]) Map(key string) V {
	o.mu.Lock()
	defer o.mu.Unlock()
	var zero V
	if len(o.rng) == 0 {
		return zero
	}
	return o.rng[o.lookup(key)%len(o.rng)]
}

// Keys returns the keys seen so far in assignment order.
func (o *Ordinal[V]) Keys() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]string(nil), o.keys...)
}

func (o *Ordinal[V]) lookup(key string) int {
	i, ok := o.index[key]
	if !ok {
		i = len(o.keys)
		o.index[key] = i
		o.keys = append(o.keys, key)
	}
	return i
}
