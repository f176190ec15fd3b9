// Package dataset holds the chart data types and the small transforms charts
// apply to them before layout.
package dataset

import (
	"math"
)

// Point is one categorical value, as drawn by bar and pie charts.
type Point struct {
	Label string  `json:"label" toml:"label"`
	Value float64 `json:"value" toml:"value"`
	Color string  `json:"color,omitempty" toml:"color,omitempty"`
}

// ScatterPoint is one observation on a scatter chart.
type ScatterPoint struct {
	X        float64 `json:"x" toml:"x"`
	Y        float64 `json:"y" toml:"y"`
	Size     float64 `json:"size,omitempty" toml:"size,omitempty"`
	Label    string  `json:"label,omitempty" toml:"label,omitempty"`
	Color    string  `json:"color,omitempty" toml:"color,omitempty"`
	Category string  `json:"category,omitempty" toml:"category,omitempty"`
}

// TreeNode is a node of hierarchical data for treemaps.
type TreeNode struct {
	Name     string      `json:"name" toml:"name"`
	Value    float64     `json:"value,omitempty" toml:"value,omitempty"`
	Color    string      `json:"color,omitempty" toml:"color,omitempty"`
	Children []*TreeNode `json:"children,omitempty" toml:"children,omitempty"`
}

// Sum returns the node's value if it is a leaf, else the sum over its children.
func (n *TreeNode) Sum() float64 {
	if n == nil {
		return 0
	}
	if len(n.Children) == 0 {
		return n.Value
	}
	var total float64
	for _, c := range n.Children {
		total += c.Sum()
	}
	return total
}

// Labels returns the labels of points in order.
func Labels(points []Point) []string {
	out := make([]string, len(points))
	for i, p := range points {
		out[i] = p.Label
	}
	return out
}

// Values returns the values of points in order.
func Values(points []Point) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = p.Value
	}
	return out
}

// Extent returns the minimum and maximum of values, ignoring NaN.
// ok is false when there is no such value.
func Extent(values []float64) (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
		ok = true
	}
	if !ok {
		return 0, 0, false
	}
	return lo, hi, true
}

// Normalize rescales values linearly so the minimum maps to 0 and the maximum
// to 1. When every value is equal the result is all zeros. NaN stays NaN.
func Normalize(values []float64) []float64 {
	out := make([]float64, len(values))
	lo, hi, ok := Extent(values)
	if !ok {
		copy(out, values)
		return out
	}
	span := hi - lo
	for i, v := range values {
		switch {
		case math.IsNaN(v):
			out[i] = v
		case span == 0 || math.IsInf(span, 0):
			out[i] = 0
		default:
			out[i] = (v - lo) / span
		}
	}
	return out
}

// Aggregate groups items by key and reduces each group with agg. Groups appear
// in the order their key is first seen.
func Aggregate[T any](items []T, key func(T) string, agg func([]T) float64) []Point {
	var (
		order  []string
		groups = make(map[string][]T)
	)
	for _, it := range items {
		k := key(it)
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], it)
	}
	out := make([]Point, len(order))
	for i, k := range order {
		out[i] = Point{Label: k, Value: agg(groups[k])}
	}
	return out
}

// Sum returns an aggregator that adds value(item) over a group.
func Sum[T any](value func(T) float64) func([]T) float64 {
	return func(items []T) float64 {
		var total float64
		for _, it := range items {
			total += value(it)
		}
		return total
	}
}

// Mean returns an aggregator that averages value(item) over a group.
func Mean[T any](value func(T) float64) func([]T) float64 {
	sum := Sum(value)
	return func(items []T) float64 {
		if len(items) == 0 {
			return math.NaN()
		}
		return sum(items) / float64(len(items))
	}
}

// Count is an aggregator returning the group size.
func Count[T any](items []T) float64 { return float64(len(items)) }
