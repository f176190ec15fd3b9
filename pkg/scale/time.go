package scale

import (
	"time"
)

// Time is a linear scale over instants. Positions are computed from the
// offset to the domain start, which keeps nanosecond precision.
type Time struct {
	start, end time.Time
	lin        *Linear
}

// NewTime returns a time scale from [start, end] to [r0, r1].
func NewTime(start, end time.Time, r0, r1 float64) *Time {
	return &Time{
		start: start,
		end:   end,
		lin:   NewLinear(0, float64(end.Sub(start)), r0, r1),
	}
}

// Map returns the range value for t.
func (s *Time) Map(t time.Time) float64 {
	return s.lin.Map(float64(t.Sub(s.start)))
}

// Invert returns the instant at range value y.
func (s *Time) Invert(y float64) time.Time {
	return s.start.Add(time.Duration(s.lin.Invert(y)))
}

func (s *Time) Domain() (time.Time, time.Time) { return s.start, s.end }
func (s *Time) Range() (float64, float64)      { return s.lin.Range() }

var tickIntervals = []time.Duration{
	time.Second,
	5 * time.Second,
	15 * time.Second,
	30 * time.Second,
	time.Minute,
	5 * time.Minute,
	15 * time.Minute,
	30 * time.Minute,
	time.Hour,
	3 * time.Hour,
	6 * time.Hour,
	12 * time.Hour,
	24 * time.Hour,
	2 * 24 * time.Hour,
	7 * 24 * time.Hour,
}

// TickInterval returns the smallest calendar-friendly interval producing at
// most n ticks over the domain. Spans longer than n weeks use a nice multiple
// of days.
func (s *Time) TickInterval(n int) time.Duration {
	if n <= 0 {
		n = 1
	}
	span := s.end.Sub(s.start)
	if span < 0 {
		span = -span
	}
	for _, d := range tickIntervals {
		if span/d <= time.Duration(n) {
			return d
		}
	}
	days := TickStep(0, span.Hours()/24, n)
	if days < 1 {
		days = 1
	}
	return time.Duration(days) * 24 * time.Hour
}

// Ticks returns instants on TickInterval(n) boundaries (aligned in UTC) that
// lie inside the domain, in ascending order.
func (s *Time) Ticks(n int) []time.Time {
	lo, hi := s.start, s.end
	if hi.Before(lo) {
		lo, hi = hi, lo
	}
	if n <= 0 {
		return []time.Time{}
	}
	step := s.TickInterval(n)
	t := lo.UTC().Truncate(step)
	if t.Before(lo) {
		t = t.Add(step)
	}
	var out []time.Time
	for ; !t.After(hi); t = t.Add(step) {
		out = append(out, t)
	}
	return out
}
