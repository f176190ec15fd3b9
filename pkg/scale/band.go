package scale

import "math"

// DefaultBandPadding is the inner and outer padding applied by [NewBand].
const DefaultBandPadding = 0.2

// Band divides a range into uniform bands, one per distinct key.
type Band struct {
	keys      []string
	index     map[string]int
	r0, r1    float64
	step      float64
	bandwidth float64
	starts    []float64
}

// NewBand returns a band scale over keys (duplicates dropped, first occurrence
// wins) and [r0, r1] with DefaultBandPadding.
func NewBand(keys []string, r0, r1 float64) *Band {
	return NewBandPadding(keys, r0, r1, DefaultBandPadding, DefaultBandPadding)
}

// NewBandPadding is NewBand with explicit inner and outer padding, both as a
// fraction of the step. Inner padding is clamped to [0, 1].
func NewBandPadding(keys []string, r0, r1, inner, outer float64) *Band {
	inner = math.Max(0, math.Min(1, inner))
	outer = math.Max(0, outer)

	b := &Band{index: make(map[string]int, len(keys)), r0: r0, r1: r1}
	for _, k := range keys {
		if _, ok := b.index[k]; ok {
			continue
		}
		b.index[k] = len(b.keys)
		b.keys = append(b.keys, k)
	}

	n := float64(len(b.keys))
	lo, hi := r0, r1
	reverse := r1 < r0
	if reverse {
		lo, hi = r1, r0
	}
	b.step = (hi - lo) / math.Max(1, n-inner+outer*2)
	start := lo + (hi-lo-b.step*(n-inner))*0.5
	b.bandwidth = b.step * (1 - inner)

	b.starts = make([]float64, len(b.keys))
	for i := range b.starts {
		b.starts[i] = start + b.step*float64(i)
	}
	if reverse {
		for i, j := 0, len(b.starts)-1; i < j; i, j = i+1, j-1 {
			b.starts[i], b.starts[j] = b.starts[j], b.starts[i]
		}
	}
	return b
}

// Map returns the start of key's band. ok is false for unknown keys.
func (b *Band) Map(key string) (pos float64, ok bool) {
	i, ok := b.index[key]
	if !ok {
		return 0, false
	}
	return b.starts[i], true
}

// Bandwidth returns the width of each band.
func (b *Band) Bandwidth() float64 { return b.bandwidth }

// Step returns the distance between the starts of adjacent bands.
func (b *Band) Step() float64 { return b.step }

// Keys returns the distinct keys in band order.
func (b *Band) Keys() []string {
	out := make([]string, len(b.keys))
	copy(out, b.keys)
	return out
}

func (b *Band) Range() (float64, float64) { return b.r0, b.r1 }
