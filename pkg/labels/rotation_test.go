package labels

import (
	"math"
	"testing"

	"github.com/matzehuels/loracharts/pkg/errors"
)

func TestCalculateLabelRotation(t *testing.T) {
	tests := []struct {
		name     string
		width    float64
		labels   []string
		maxWidth float64
		want     Rotation
	}{
		{"empty labels", 10, nil, 100, RotateNone},
		{"empty labels zero width", 0, []string{}, 100, RotateNone},
		{"exact fit", 300, months, 100, RotateNone},
		{"roomy", 600, months, 100, RotateNone},
		{"tilted", 240, months, 100, Rotate45},
		{"vertical", 150, months, 100, Rotate90},
		{"zero width", 0, months, 100, Rotate90},
		{"negative width", -300, months, 100, Rotate90},
		{"zero width zero labels width", 0, months, 0, RotateNone},
		{"nan width", math.NaN(), months, 100, Rotate90},
		{"infinite width", math.Inf(1), months, 100, RotateNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateLabelRotation(tt.width, tt.labels, tt.maxWidth)
			if got != tt.want {
				t.Errorf("CalculateLabelRotation(%v, %d labels, %v) = %v, want %v",
					tt.width, len(tt.labels), tt.maxWidth, got, tt.want)
			}
			if !got.Valid() {
				t.Errorf("rotation %v is not an enumerated angle", got)
			}
		})
	}
}

func TestCalculateLabelRotation45Boundary(t *testing.T) {
	maxWidth := 100.0
	threshold := maxWidth * rotated45Factor

	if got := CalculateLabelRotation(threshold, []string{"a"}, maxWidth); got != Rotate45 {
		t.Errorf("at threshold: got %v, want %v", got, Rotate45)
	}
	if got := CalculateLabelRotation(2*threshold, []string{"a", "b"}, maxWidth); got != Rotate45 {
		t.Errorf("at threshold with two labels: got %v, want %v", got, Rotate45)
	}
	below := math.Nextafter(threshold, 0)
	if got := CalculateLabelRotation(below, []string{"a"}, maxWidth); got != Rotate90 {
		t.Errorf("just below threshold: got %v, want %v", got, Rotate90)
	}
}

func TestCalculateLabelRotationMonotonic(t *testing.T) {
	compaction := map[Rotation]int{RotateNone: 0, Rotate45: 1, Rotate90: 2}
	labels := []string{"a", "b", "c", "d"}

	for _, maxWidth := range []float64{1, 37.5, 100, 250} {
		prev := -1
		for width := 2000.0; width >= -50; width -= 0.5 {
			c := compaction[CalculateLabelRotation(width, labels, maxWidth)]
			if c < prev {
				t.Fatalf("maxWidth=%v: compaction decreased from %d to %d at width %v", maxWidth, prev, c, width)
			}
			prev = c
		}
		if prev != 2 {
			t.Errorf("maxWidth=%v: expected vertical labels at the narrowest width, got compaction %d", maxWidth, prev)
		}
	}
}

func TestShouldRotateLabels(t *testing.T) {
	tests := []struct {
		name     string
		width    float64
		labels   []string
		maxWidth float64
		padding  float64
		want     bool
	}{
		{"empty", 0, nil, 100, 10, false},
		{"plenty of room", 600, months, 100, 10, false},
		{"exact fit with padding", 330, months, 100, 10, false},
		{"exact fit without padding", 300, months, 100, 0, false},
		{"padding tips it", 300, months, 100, 10, true},
		{"narrow", 150, months, 100, 10, true},
		{"negative width", -1, months, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ShouldRotateLabels(tt.width, tt.labels, tt.maxWidth, tt.padding)
			if got != tt.want {
				t.Errorf("ShouldRotateLabels(%v, %d labels, %v, %v) = %v, want %v",
					tt.width, len(tt.labels), tt.maxWidth, tt.padding, got, tt.want)
			}
		})
	}
}

// The padded overlap check triggers sooner than the angle selector.
func TestShouldRotateLabelsIsMoreConservative(t *testing.T) {
	width := 315.0 // 105 per label: fits 100 but not 100+10
	if got := CalculateLabelRotation(width, months, DefaultMaxLabelWidth); got != RotateNone {
		t.Fatalf("CalculateLabelRotation = %v, want %v", got, RotateNone)
	}
	if !ShouldRotateLabels(width, months, DefaultMaxLabelWidth, DefaultLabelPadding) {
		t.Error("ShouldRotateLabels = false, want true")
	}

	for w := 0.0; w <= 1000; w += 1 {
		if CalculateLabelRotation(w, months, 100) != RotateNone && !ShouldRotateLabels(w, months, 100, 10) {
			t.Fatalf("width %v: angle selector rotates but overlap check does not", w)
		}
	}
}

func TestParseRotation(t *testing.T) {
	tests := []struct {
		in      string
		want    Rotation
		wantErr bool
	}{
		{"0", RotateNone, false},
		{"-45", Rotate45, false},
		{"45", Rotate45, false},
		{"-90deg", Rotate90, false},
		{" 90 ", Rotate90, false},
		{"30", 0, true},
		{"abc", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRotation(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseRotation(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, errors.ErrCodeInvalidInput) {
					t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidInput)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseRotation(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRotationString(t *testing.T) {
	if Rotate45.String() != "-45" || RotateNone.String() != "0" {
		t.Errorf("String() = %q, %q", Rotate45.String(), RotateNone.String())
	}
	if Rotation(30).Valid() {
		t.Error("30 should not be a valid rotation")
	}
}
