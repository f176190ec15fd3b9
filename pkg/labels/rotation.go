package labels

import (
	"strconv"
	"strings"

	"github.com/matzehuels/loracharts/pkg/errors"
)

// Rotation is the angle, in degrees, applied to axis labels.
type Rotation int

// The only angles the layout produces.
const (
	RotateNone Rotation = 0
	Rotate45   Rotation = -45
	Rotate90   Rotation = -90
)

// Defaults shared by the rotation helpers.
const (
	DefaultMaxLabelWidth = 100.0
	DefaultLabelPadding  = 10.0
)

// rotated45Factor approximates cos(45°): the horizontal share of a label
// drawn at -45 degrees.
const rotated45Factor = 0.707

// Valid reports whether r is one of the enumerated angles.
func (r Rotation) Valid() bool {
	return r == RotateNone || r == Rotate45 || r == Rotate90
}

// Degrees returns r as a float for transform arithmetic.
func (r Rotation) Degrees() float64 { return float64(r) }

func (r Rotation) String() string { return strconv.Itoa(int(r)) }

// ParseRotation parses "0", "-45" or "-90". The unsigned forms "45" and "90"
// are accepted as aliases for the negative angles.
func ParseRotation(s string) (Rotation, error) {
	n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(s), "deg"))
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid rotation %q", s)
	}
	if n > 0 {
		n = -n
	}
	r := Rotation(n)
	if !r.Valid() {
		return 0, errors.New(errors.ErrCodeInvalidInput, "invalid rotation %q (must be 0, -45 or -90)", s)
	}
	return r, nil
}

// CalculateLabelRotation picks the rotation for labels spread evenly over
// availableWidth, given the width of the widest label.
//
// Labels stay horizontal while each gets at least maxLabelWidth, tilt to -45
// while each gets at least the 45-degree footprint (maxLabelWidth * 0.707), and
// stand vertical otherwise. An empty label set never rotates. Only the number
// of labels is used.
func CalculateLabelRotation(availableWidth float64, labels []string, maxLabelWidth float64) Rotation {
	if len(labels) == 0 {
		return RotateNone
	}

	perLabel := availableWidth / float64(len(labels))
	if perLabel >= maxLabelWidth {
		return RotateNone
	}

	if perLabel >= maxLabelWidth*rotated45Factor {
		return Rotate45
	}

	return Rotate90
}

// ShouldRotateLabels reports whether labels would overlap if drawn unrotated,
// reserving padding pixels between neighbours.
//
// Unlike CalculateLabelRotation this adds padding to maxLabelWidth before the
// comparison, so it answers true for some widths at which the angle selector
// still returns RotateNone.
func ShouldRotateLabels(width float64, labels []string, maxLabelWidth, padding float64) bool {
	if len(labels) == 0 {
		return false
	}

	perLabel := width / float64(len(labels))
	required := maxLabelWidth + padding

	return required > perLabel
}
