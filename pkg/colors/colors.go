// Package colors implements the color helpers used by chart series.
//
// Colors are accepted in the forms chart configs use: "#rgb", "#rrggbb",
// "rgb(r, g, b)", "rgba(r, g, b, a)" and SVG color names. Helpers that derive a
// color return CSS "rgb(r, g, b)" strings, or "rgba(r, g, b, a)" when the input
// was translucent. Input that cannot be parsed is returned unchanged so a bad
// color in a config degrades to the browser's handling of it.
package colors

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"

	"github.com/matzehuels/loracharts/pkg/errors"
)

// DefaultAmount is the lighten/darken step used when callers have no preference.
const DefaultAmount = 0.2

// brightness is the per-step channel factor for Darken; Lighten uses its inverse.
const brightness = 0.7

var (
	hexPattern = regexp.MustCompile(`^#?([0-9a-fA-F]{2})([0-9a-fA-F]{2})([0-9a-fA-F]{2})$`)
	rgbPattern = regexp.MustCompile(`^rgba?\(\s*([0-9.]+)\s*,\s*([0-9.]+)\s*,\s*([0-9.]+)\s*(?:,\s*([0-9.]+)\s*)?\)$`)
)

// HexToRGBA converts "#rrggbb" (the "#" is optional) to "rgba(r, g, b, alpha)".
// Any other input, including shorthand "#rgb", is returned unchanged.
func HexToRGBA(hex string, alpha float64) string {
	m := hexPattern.FindStringSubmatch(hex)
	if m == nil {
		return hex
	}
	r, _ := strconv.ParseUint(m[1], 16, 8)
	g, _ := strconv.ParseUint(m[2], 16, 8)
	b, _ := strconv.ParseUint(m[3], 16, 8)
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, strconv.FormatFloat(alpha, 'f', -1, 64))
}

// Parse reads a CSS color. Any alpha component is validated and dropped; use
// ParseAlpha to keep it.
func Parse(s string) (colorful.Color, error) {
	c, _, err := ParseAlpha(s)
	return c, err
}

// ParseAlpha reads a CSS color and its opacity. Opaque forms report alpha 1;
// alpha above 1 is clamped.
func ParseAlpha(s string) (colorful.Color, float64, error) {
	in := strings.ToLower(strings.TrimSpace(s))
	if in == "" {
		return colorful.Color{}, 0, errors.New(errors.ErrCodeInvalidColor, "empty color")
	}
	if strings.HasPrefix(in, "#") {
		c, err := colorful.Hex(in)
		if err != nil {
			return colorful.Color{}, 0, errors.Wrap(errors.ErrCodeInvalidColor, err, "invalid hex color %q", s)
		}
		return c, 1, nil
	}
	if m := rgbPattern.FindStringSubmatch(in); m != nil {
		var ch [3]float64
		for i := range ch {
			v, err := strconv.ParseFloat(m[i+1], 64)
			if err != nil || v > 255 {
				return colorful.Color{}, 0, errors.New(errors.ErrCodeInvalidColor, "channel out of range in %q", s)
			}
			ch[i] = v / 255
		}
		alpha := 1.0
		if m[4] != "" {
			a, err := strconv.ParseFloat(m[4], 64)
			if err != nil {
				return colorful.Color{}, 0, errors.New(errors.ErrCodeInvalidColor, "invalid alpha in %q", s)
			}
			alpha = min(a, 1)
		}
		return colorful.Color{R: ch[0], G: ch[1], B: ch[2]}, alpha, nil
	}
	if named, ok := colornames.Map[in]; ok {
		c, _ := colorful.MakeColor(named)
		return c, 1, nil
	}
	return colorful.Color{}, 0, errors.New(errors.ErrCodeInvalidColor, "unrecognized color %q", s)
}

// Lighten scales every channel by (1/0.7)^k and keeps the alpha of an rgba
// input. Unparseable input is returned unchanged.
func Lighten(color string, k float64) string {
	c, a, err := ParseAlpha(color)
	if err != nil {
		return color
	}
	return scale(c, a, math.Pow(1/brightness, k))
}

// Darken scales every channel by 0.7^k and keeps the alpha of an rgba input.
// Unparseable input is returned unchanged.
func Darken(color string, k float64) string {
	c, a, err := ParseAlpha(color)
	if err != nil {
		return color
	}
	return scale(c, a, math.Pow(brightness, k))
}

func scale(c colorful.Color, alpha, f float64) string {
	return RGBA(colorful.Color{R: c.R * f, G: c.G * f, B: c.B * f}, alpha)
}

// RGB formats c as "rgb(r, g, b)", clamping each channel to 0-255.
func RGB(c colorful.Color) string {
	return fmt.Sprintf("rgb(%d, %d, %d)", channel(c.R), channel(c.G), channel(c.B))
}

// RGBA formats c with opacity alpha. An alpha of 1 or more prints as RGB does.
func RGBA(c colorful.Color, alpha float64) string {
	if alpha >= 1 {
		return RGB(c)
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", channel(c.R), channel(c.G), channel(c.B),
		strconv.FormatFloat(alpha, 'f', -1, 64))
}

func channel(v float64) int {
	n := math.Round(v * 255)
	if math.IsNaN(n) || n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return int(n)
}

// Palette returns count colors sharing base's saturation and lightness, with
// hues spread evenly around the wheel starting at base's hue. The first entry is
// base itself. An unparseable base yields []string{base}; count <= 0 yields none.
func Palette(base string, count int) []string {
	c, err := Parse(base)
	if err != nil {
		return []string{base}
	}
	if count <= 0 {
		return []string{}
	}
	h, s, l := c.Hsl()
	out := make([]string, count)
	step := 360 / float64(count)
	for i := range out {
		hue := math.Mod(h+step*float64(i), 360)
		out[i] = RGB(colorful.Hsl(hue, s, l))
	}
	return out
}
