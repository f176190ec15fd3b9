// Package theme defines the design tokens charts are styled with and loads them
// from JSON or TOML files.
//
// A theme carries colors, font family and sizes, border, spacing and animation
// settings. Renderers read tokens directly; label layout reads the font through
// [Theme.Font] so axis text is measured with the size it will be drawn at.
package theme

import (
	"github.com/matzehuels/loracharts/pkg/colors"
	"github.com/matzehuels/loracharts/pkg/labels"
)

// Mode is the light/dark variant of a theme.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// Weight is a font weight keyword.
type Weight string

const (
	WeightExtraLight Weight = "extra-light"
	WeightLight      Weight = "light"
	WeightNormal     Weight = "normal"
	WeightMedium     Weight = "medium"
	WeightBold       Weight = "bold"
	WeightBolder     Weight = "bolder"
)

// SizeKey selects a step of a [Scale].
type SizeKey string

const (
	XS  SizeKey = "xs"
	SM  SizeKey = "sm"
	MD  SizeKey = "md"
	LG  SizeKey = "lg"
	XL  SizeKey = "xl"
	XXL SizeKey = "xxl"
)

// SizeKeys lists the scale steps from smallest to largest.
var SizeKeys = []SizeKey{XS, SM, MD, LG, XL, XXL}

// Theme is a complete set of design tokens.
type Theme struct {
	Mode       Mode       `json:"mode" toml:"mode" validate:"oneof=light dark"`
	Colors     Colors     `json:"colors" toml:"colors"`
	Fonts      Fonts      `json:"fonts" toml:"fonts"`
	Borders    Borders    `json:"borders" toml:"borders"`
	Spacing    Scale      `json:"spacing" toml:"spacing"`
	Animations Animations `json:"animations" toml:"animations"`
	Effects    *Effects   `json:"effects,omitempty" toml:"effects,omitempty"`
}

// Colors are the palette tokens. The accent and gradient entries are optional.
type Colors struct {
	Primary     string `json:"primary" toml:"primary" validate:"required,csscolor"`
	Secondary   string `json:"secondary" toml:"secondary" validate:"required,csscolor"`
	Background  string `json:"background" toml:"background" validate:"required,csscolor"`
	Text        string `json:"text" toml:"text" validate:"required,csscolor"`
	Border      string `json:"border" toml:"border" validate:"required"`
	Error       string `json:"error" toml:"error" validate:"required"`
	Warning     string `json:"warning" toml:"warning" validate:"required"`
	Success     string `json:"success" toml:"success" validate:"required"`
	Shadow      string `json:"shadow" toml:"shadow" validate:"required"`
	Glass       string `json:"glass,omitempty" toml:"glass,omitempty"`
	GlassHover  string `json:"glassHover,omitempty" toml:"glassHover,omitempty"`
	GlassBorder string `json:"glassBorder,omitempty" toml:"glassBorder,omitempty"`

	Accent1 string `json:"accent1,omitempty" toml:"accent1,omitempty"`
	Accent2 string `json:"accent2,omitempty" toml:"accent2,omitempty"`
	Accent3 string `json:"accent3,omitempty" toml:"accent3,omitempty"`
	Accent4 string `json:"accent4,omitempty" toml:"accent4,omitempty"`
	Accent5 string `json:"accent5,omitempty" toml:"accent5,omitempty"`

	Gradient1 []string `json:"gradient1,omitempty" toml:"gradient1,omitempty"`
	Gradient2 []string `json:"gradient2,omitempty" toml:"gradient2,omitempty"`
	Gradient3 []string `json:"gradient3,omitempty" toml:"gradient3,omitempty"`
	Gradient4 []string `json:"gradient4,omitempty" toml:"gradient4,omitempty"`
	Gradient5 []string `json:"gradient5,omitempty" toml:"gradient5,omitempty"`
}

// Accents returns the non-empty accent colors in order.
func (c Colors) Accents() []string {
	var out []string
	for _, a := range []string{c.Accent1, c.Accent2, c.Accent3, c.Accent4, c.Accent5} {
		if a != "" {
			out = append(out, a)
		}
	}
	return out
}

// Scale is a six-step size scale in pixels, used for spacing and font sizes.
type Scale struct {
	XS  float64 `json:"xs" toml:"xs" validate:"gt=0"`
	SM  float64 `json:"sm" toml:"sm" validate:"gt=0"`
	MD  float64 `json:"md" toml:"md" validate:"gt=0"`
	LG  float64 `json:"lg" toml:"lg" validate:"gt=0"`
	XL  float64 `json:"xl" toml:"xl" validate:"gt=0"`
	XXL float64 `json:"xxl" toml:"xxl" validate:"gt=0"`
}

// Get returns the size for k, or MD for an unknown key.
func (s Scale) Get(k SizeKey) float64 {
	switch k {
	case XS:
		return s.XS
	case SM:
		return s.SM
	case LG:
		return s.LG
	case XL:
		return s.XL
	case XXL:
		return s.XXL
	default:
		return s.MD
	}
}

// Fonts are the typography tokens.
type Fonts struct {
	Family string `json:"family" toml:"family" validate:"required"`
	Size   Scale  `json:"size" toml:"size"`
	Weight Weight `json:"weight" toml:"weight" validate:"omitempty,oneof=extra-light light normal medium bold bolder"`
}

// Borders are the border tokens, as CSS lengths.
type Borders struct {
	Radius string `json:"radius" toml:"radius"`
	Width  string `json:"width" toml:"width"`
	Style  string `json:"style" toml:"style" validate:"omitempty,oneof=solid dashed dotted double none"`
}

// Animations are transition timings. Duration is in milliseconds.
type Animations struct {
	Duration float64 `json:"duration" toml:"duration" validate:"gte=0"`
	Easing   string  `json:"easing" toml:"easing"`
}

// Effects are optional CSS effect values passed through to renderers.
type Effects struct {
	Blur            string `json:"blur,omitempty" toml:"blur,omitempty"`
	BlurStrong      string `json:"blurStrong,omitempty" toml:"blurStrong,omitempty"`
	Shadow3D        string `json:"shadow3d,omitempty" toml:"shadow3d,omitempty"`
	ShadowHover     string `json:"shadowHover,omitempty" toml:"shadowHover,omitempty"`
	ShadowInner     string `json:"shadowInner,omitempty" toml:"shadowInner,omitempty"`
	GlassGradient   string `json:"glassGradient,omitempty" toml:"glassGradient,omitempty"`
	GlassBackground string `json:"glassBackground,omitempty" toml:"glassBackground,omitempty"`
	GlassBorder     string `json:"glassBorder,omitempty" toml:"glassBorder,omitempty"`
	Perspective     string `json:"perspective,omitempty" toml:"perspective,omitempty"`
	Transform3D     string `json:"transform3d,omitempty" toml:"transform3d,omitempty"`
}

// Default returns the built-in light theme.
func Default() *Theme {
	return &Theme{
		Mode: Light,
		Colors: Colors{
			Primary:    "#007bff",
			Secondary:  "#6c757d",
			Background: "#ffffff",
			Text:       "#212529",
			Border:     "#dee2e6",
			Error:      "#dc3545",
			Warning:    "#ffc107",
			Success:    "#28a745",
			Shadow:     "#00000020",
		},
		Fonts: Fonts{
			Family: "Arial, sans-serif",
			Size:   Scale{XS: 10, SM: 12, MD: 14, LG: 16, XL: 20, XXL: 24},
			Weight: WeightNormal,
		},
		Borders:    Borders{Radius: "4px", Width: "1px", Style: "solid"},
		Spacing:    Scale{XS: 4, SM: 8, MD: 16, LG: 24, XL: 32, XXL: 48},
		Animations: Animations{Duration: 300, Easing: "ease-in-out"},
	}
}

// Font returns the label font for size step k.
func (t *Theme) Font(k SizeKey) labels.Font {
	return labels.Font{Size: t.Fonts.Size.Get(k), Family: t.Fonts.Family}
}

// SeriesColors returns n colors for data series: the theme accents when there
// are enough of them, else a palette derived from the primary color.
func (t *Theme) SeriesColors(n int) []string {
	if n <= 0 {
		return []string{}
	}
	if acc := t.Colors.Accents(); len(acc) >= n {
		return acc[:n]
	}
	return colors.Palette(t.Colors.Primary, n)
}
