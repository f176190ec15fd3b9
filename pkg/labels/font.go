package labels

import "github.com/matzehuels/loracharts/pkg/fonts"

// Default font parameters, matching the chart components' defaults.
const (
	DefaultFontSize   = 12.0
	DefaultFontFamily = fonts.DefaultFamily

	// AxisFontSize is the tick label size used by category axes.
	AxisFontSize = 14.0
)

// Font describes the text a label is drawn with.
// Size is in pixels; Family is a CSS font-family list.
type Font struct {
	Size   float64 `json:"size,omitempty" toml:"size"`
	Family string  `json:"family,omitempty" toml:"family"`
}

// withDefaults fills zero or unusable fields with the package defaults.
func (f Font) withDefaults() Font {
	if !(f.Size > 0) {
		f.Size = DefaultFontSize
	}
	if f.Family == "" {
		f.Family = DefaultFontFamily
	}
	return f
}

// CSS returns the font in CSS shorthand, e.g. "12px system-ui, sans-serif".
func (f Font) CSS() string {
	f = f.withDefaults()
	return formatPx(f.Size) + " " + f.Family
}
