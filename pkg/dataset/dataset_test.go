package dataset

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   []float64
		want []float64
	}{
		{"range", []float64{10, 20, 30}, []float64{0, 0.5, 1}},
		{"unordered", []float64{5, -5, 0}, []float64{1, 0, 0.5}},
		{"constant", []float64{7, 7, 7}, []float64{0, 0, 0}},
		{"single", []float64{42}, []float64{0}},
		{"empty", []float64{}, []float64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
				t.Errorf("Normalize(%v) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestNormalizeNaN(t *testing.T) {
	got := Normalize([]float64{0, math.NaN(), 4})
	if got[0] != 0 || got[2] != 1 || !math.IsNaN(got[1]) {
		t.Errorf("Normalize with NaN = %v", got)
	}
	all := Normalize([]float64{math.NaN()})
	if !math.IsNaN(all[0]) {
		t.Errorf("Normalize(all NaN) = %v", all)
	}
}

func TestNormalizeDoesNotMutate(t *testing.T) {
	in := []float64{3, 1, 2}
	Normalize(in)
	if !cmp.Equal(in, []float64{3, 1, 2}) {
		t.Errorf("input modified: %v", in)
	}
}

func TestExtent(t *testing.T) {
	lo, hi, ok := Extent([]float64{3, math.NaN(), -1, 8})
	if !ok || lo != -1 || hi != 8 {
		t.Errorf("Extent = %v, %v, %v", lo, hi, ok)
	}
	if _, _, ok := Extent(nil); ok {
		t.Error("Extent(nil) should report false")
	}
}

type sale struct {
	region string
	amount float64
}

func TestAggregate(t *testing.T) {
	sales := []sale{
		{"north", 10}, {"south", 5}, {"north", 2.5}, {"east", 1}, {"south", 5},
	}
	region := func(s sale) string { return s.region }
	amount := func(s sale) float64 { return s.amount }

	tests := []struct {
		name string
		agg  func([]sale) float64
		want []Point
	}{
		{"sum", Sum(amount), []Point{{Label: "north", Value: 12.5}, {Label: "south", Value: 10}, {Label: "east", Value: 1}}},
		{"mean", Mean(amount), []Point{{Label: "north", Value: 6.25}, {Label: "south", Value: 5}, {Label: "east", Value: 1}}},
		{"count", Count[sale], []Point{{Label: "north", Value: 2}, {Label: "south", Value: 2}, {Label: "east", Value: 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Aggregate(sales, region, tt.agg)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Aggregate mismatch (-want +got):\n%s", diff)
			}
		})
	}

	if got := Aggregate(nil, region, Sum(amount)); len(got) != 0 {
		t.Errorf("Aggregate(nil) = %v, want empty", got)
	}
}

func TestTreeNodeSum(t *testing.T) {
	tree := &TreeNode{
		Name: "root",
		Children: []*TreeNode{
			{Name: "a", Value: 3},
			{Name: "b", Value: 99, Children: []*TreeNode{{Name: "b1", Value: 1}, {Name: "b2", Value: 2}}},
		},
	}
	if got := tree.Sum(); got != 6 {
		t.Errorf("Sum() = %v, want 6", got)
	}
	var nilNode *TreeNode
	if nilNode.Sum() != 0 {
		t.Error("nil node should sum to 0")
	}
}

func TestLabelsValues(t *testing.T) {
	pts := []Point{{Label: "a", Value: 1}, {Label: "b", Value: 2}}
	if !cmp.Equal(Labels(pts), []string{"a", "b"}) || !cmp.Equal(Values(pts), []float64{1, 2}) {
		t.Errorf("Labels/Values = %v %v", Labels(pts), Values(pts))
	}
}
