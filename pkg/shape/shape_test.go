package shape

import (
	"math"
	"strings"
	"testing"
)

func TestRoundedRect(t *testing.T) {
	tests := []struct {
		name       string
		x, y, w, h float64
		r          float64
		want       string
	}{
		{
			name: "basic",
			x:    0, y: 0, w: 100, h: 50, r: 4,
			want: "M 4 0 H 96 Q 100 0 100 4 V 46 Q 100 50 96 50 H 4 Q 0 50 0 46 V 4 Q 0 0 4 0 Z",
		},
		{
			name: "radius clamped to half height",
			x:    10, y: 20, w: 100, h: 10, r: 8,
			want: "M 15 20 H 105 Q 110 20 110 25 V 25 Q 110 30 105 30 H 15 Q 10 30 10 25 V 25 Q 10 20 15 20 Z",
		},
		{
			name: "negative radius is square",
			x:    0, y: 0, w: 2, h: 2, r: -1,
			want: "M 0 0 H 2 Q 2 0 2 0 V 2 Q 2 2 2 2 H 0 Q 0 2 0 2 V 0 Q 0 0 0 0 Z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RoundedRect(tt.x, tt.y, tt.w, tt.h, tt.r); got != tt.want {
				t.Errorf("RoundedRect() =\n  %q\nwant\n  %q", got, tt.want)
			}
		})
	}
}

func TestRoundedRectFractional(t *testing.T) {
	got := RoundedRect(0.5, 0, 10, 10, 2.5)
	if !strings.HasPrefix(got, "M 3 0 H 8 ") {
		t.Errorf("RoundedRect fractional = %q", got)
	}
}

func TestResponsiveDimensions(t *testing.T) {
	tests := []struct {
		name          string
		width, aspect float64
		wantW, wantH  float64
	}{
		{"default ratio", 1600, 0, 1600, 900},
		{"negative ratio", 1600, -2, 1600, 900},
		{"nan ratio", 1600, math.NaN(), 1600, 900},
		{"square", 400, 1, 400, 400},
		{"four by three", 800, 4.0 / 3.0, 800, 600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := ResponsiveDimensions(tt.width, tt.aspect)
			if w != tt.wantW || math.Abs(h-tt.wantH) > 1e-9 {
				t.Errorf("ResponsiveDimensions(%v, %v) = %v, %v; want %v, %v", tt.width, tt.aspect, w, h, tt.wantW, tt.wantH)
			}
		})
	}
}
