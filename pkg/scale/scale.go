// Package scale maps data values to pixel positions.
//
// Continuous scales (linear, log, sqrt) map a numeric domain onto a numeric
// range through an optional transform. [Time] is a linear scale over instants,
// [Band] spreads discrete keys over a range with padding and [Ordinal] assigns
// range values to keys in first-seen order. Scales are immutable except
// [Ordinal], which learns keys as it sees them.
package scale

import (
	"strings"
)

// Kind names a scale type.
type Kind string

const (
	KindLinear Kind = "linear"
	KindLog    Kind = "log"
	KindSqrt   Kind = "sqrt"
	KindTime   Kind = "time"
	KindBand   Kind = "band"
)

// Kinds lists every kind accepted by [ParseKind].
var Kinds = []Kind{KindLinear, KindLog, KindSqrt, KindTime, KindBand}

// ParseKind returns the kind named s. Unrecognized names are linear.
func ParseKind(s string) Kind {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds {
		if k == known {
			return k
		}
	}
	return KindLinear
}

// Continuous is a scale over a numeric domain.
type Continuous interface {
	// Map returns the range value for x.
	Map(x float64) float64
	// Invert returns the domain value for y.
	Invert(y float64) float64
	Domain() (float64, float64)
	Range() (float64, float64)
	// Ticks returns roughly n representative domain values.
	Ticks(n int) []float64
}

// New builds a continuous scale of the given kind from two-element domain and
// range slices. Missing bounds default to [0, 1]. Time domains are Unix
// milliseconds. Band scales need string keys and fall back to linear here, as
// does any unknown kind.
func New(kind Kind, domain, rng []float64) Continuous {
	d0, d1 := bounds(domain)
	r0, r1 := bounds(rng)
	switch kind {
	case KindLog:
		return NewLog(d0, d1, r0, r1)
	case KindSqrt:
		return NewSqrt(d0, d1, r0, r1)
	default:
		return NewLinear(d0, d1, r0, r1)
	}
}

func bounds(v []float64) (float64, float64) {
	switch len(v) {
	case 0:
		return 0, 1
	case 1:
		return v[0], 1
	default:
		return v[0], v[len(v)-1]
	}
}
