// Package shape builds SVG geometry shared by chart renderers.
package shape

import (
	"math"
	"strconv"
	"strings"
)

// DefaultAspectRatio is the width:height ratio used when none is given.
const DefaultAspectRatio = 16.0 / 9.0

// RoundedRect returns SVG path data for a rectangle at (x, y) with corners
// rounded by quadratic curves. The radius is clamped to [0, min(w/2, h/2)].
func RoundedRect(x, y, w, h, r float64) string {
	r = math.Max(0, math.Min(r, math.Min(w/2, h/2)))

	var b pathBuilder
	b.cmd("M", x+r, y)
	b.cmd("H", x+w-r)
	b.cmd("Q", x+w, y, x+w, y+r)
	b.cmd("V", y+h-r)
	b.cmd("Q", x+w, y+h, x+w-r, y+h)
	b.cmd("H", x+r)
	b.cmd("Q", x, y+h, x, y+h-r)
	b.cmd("V", y+r)
	b.cmd("Q", x, y, x+r, y)
	b.sb.WriteString("Z")
	return b.sb.String()
}

// ResponsiveDimensions returns the size of a chart filling width at the given
// aspect ratio. A non-positive or non-finite ratio uses DefaultAspectRatio.
func ResponsiveDimensions(width, aspect float64) (w, h float64) {
	if !(aspect > 0) || math.IsInf(aspect, 0) {
		aspect = DefaultAspectRatio
	}
	return width, width / aspect
}

type pathBuilder struct {
	sb strings.Builder
}

func (b *pathBuilder) cmd(name string, args ...float64) {
	b.sb.WriteString(name)
	for _, a := range args {
		b.sb.WriteByte(' ')
		b.sb.WriteString(strconv.FormatFloat(a, 'f', -1, 64))
	}
	b.sb.WriteByte(' ')
}
