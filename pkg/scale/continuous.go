package scale

import (
	"math"
)

type transform struct {
	forward func(float64) float64
	inverse func(float64) float64
}

var identity = transform{
	forward: func(x float64) float64 { return x },
	inverse: func(x float64) float64 { return x },
}

var sqrtTransform = transform{
	forward: func(x float64) float64 { return math.Copysign(math.Sqrt(math.Abs(x)), x) },
	inverse: func(x float64) float64 { return math.Copysign(x*x, x) },
}

func logTransform(negative bool) transform {
	if negative {
		return transform{
			forward: func(x float64) float64 { return -math.Log10(-x) },
			inverse: func(x float64) float64 { return -math.Pow(10, -x) },
		}
	}
	return transform{
		forward: math.Log10,
		inverse: func(x float64) float64 { return math.Pow(10, x) },
	}
}

// continuous interpolates linearly between the transformed domain bounds.
type continuous struct {
	d0, d1 float64
	r0, r1 float64
	t      transform
}

// Map returns the range value for x. Values outside the domain extrapolate.
// A degenerate domain maps everything to the middle of the range.
func (s continuous) Map(x float64) float64 {
	a, b := s.t.forward(s.d0), s.t.forward(s.d1)
	var u float64
	if b-a == 0 {
		u = 0.5
	} else {
		u = (s.t.forward(x) - a) / (b - a)
	}
	return s.r0 + u*(s.r1-s.r0)
}

// Invert returns the domain value for y. A degenerate range maps to the middle
// of the domain.
func (s continuous) Invert(y float64) float64 {
	a, b := s.t.forward(s.d0), s.t.forward(s.d1)
	var u float64
	if s.r1-s.r0 == 0 {
		u = 0.5
	} else {
		u = (y - s.r0) / (s.r1 - s.r0)
	}
	return s.t.inverse(a + u*(b-a))
}

func (s continuous) Domain() (float64, float64) { return s.d0, s.d1 }
func (s continuous) Range() (float64, float64)  { return s.r0, s.r1 }

// Linear is a continuous scale with no transform.
type Linear struct{ continuous }

// NewLinear returns a linear scale from [d0, d1] to [r0, r1].
func NewLinear(d0, d1, r0, r1 float64) *Linear {
	return &Linear{continuous{d0: d0, d1: d1, r0: r0, r1: r1, t: identity}}
}

// Ticks returns nice ticks covering the domain.
func (s *Linear) Ticks(n int) []float64 { return Ticks(s.d0, s.d1, n) }

// Sqrt is a power scale with exponent 0.5; negative values keep their sign.
type Sqrt struct{ continuous }

// NewSqrt returns a square-root scale from [d0, d1] to [r0, r1].
func NewSqrt(d0, d1, r0, r1 float64) *Sqrt {
	return &Sqrt{continuous{d0: d0, d1: d1, r0: r0, r1: r1, t: sqrtTransform}}
}

// Ticks returns nice ticks covering the domain.
func (s *Sqrt) Ticks(n int) []float64 { return Ticks(s.d0, s.d1, n) }

// Log is a base-10 logarithmic scale. The domain must not include or cross
// zero; values on the wrong side of zero map to NaN.
type Log struct{ continuous }

// NewLog returns a log scale from [d0, d1] to [r0, r1]. A domain below zero
// uses the mirrored transform.
func NewLog(d0, d1, r0, r1 float64) *Log {
	return &Log{continuous{d0: d0, d1: d1, r0: r0, r1: r1, t: logTransform(d0 < 0)}}
}

// Ticks returns the powers of ten inside the domain. When the domain spans
// fewer than two of them, linear ticks are returned instead.
func (s *Log) Ticks(n int) []float64 {
	lo, hi := math.Min(s.d0, s.d1), math.Max(s.d0, s.d1)
	if lo <= 0 || n <= 0 {
		return Ticks(s.d0, s.d1, n)
	}
	var out []float64
	for p := math.Ceil(math.Log10(lo)); math.Pow(10, p) <= hi; p++ {
		out = append(out, math.Pow(10, p))
	}
	if len(out) < 2 {
		return Ticks(s.d0, s.d1, n)
	}
	if s.d0 > s.d1 {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}
