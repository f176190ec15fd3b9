package labels

// AxisLayout is the label decision for one axis render. It is recomputed on
// every call and holds no references to its inputs.
type AxisLayout struct {
	Font          Font      `json:"font"`
	MaxLabelWidth float64   `json:"max_label_width"`
	PerLabel      float64   `json:"per_label"`
	Rotation      Rotation  `json:"rotation"`
	Overlap       bool      `json:"overlap"`
	Placement     Placement `json:"placement"`
}

type axisConfig struct {
	override   *Rotation
	autoRotate bool
	padding    float64
}

// AxisOption configures LayoutAxis.
type AxisOption func(*axisConfig)

// WithRotation forces r instead of computing a rotation.
func WithRotation(r Rotation) AxisOption {
	return func(c *axisConfig) { c.override = &r }
}

// WithAutoRotate enables or disables automatic rotation (enabled by default).
// With auto rotation off and no explicit rotation, labels stay horizontal.
func WithAutoRotate(enabled bool) AxisOption {
	return func(c *axisConfig) { c.autoRotate = enabled }
}

// WithPadding sets the gap used for the Overlap check (DefaultLabelPadding).
func WithPadding(padding float64) AxisOption {
	return func(c *axisConfig) { c.padding = padding }
}

// LayoutAxis runs the label chain for a category axis innerWidth pixels wide.
//
// The widest label is measured with m, the rotation is chosen with
// CalculateLabelRotation unless overridden, and Overlap reports
// ShouldRotateLabels for the same inputs. A zero font size means AxisFontSize.
func LayoutAxis(m TextMeasurer, innerWidth float64, labels []string, font Font, opts ...AxisOption) AxisLayout {
	cfg := axisConfig{autoRotate: true, padding: DefaultLabelPadding}
	for _, opt := range opts {
		opt(&cfg)
	}

	if !(font.Size > 0) {
		font.Size = AxisFontSize
	}
	font = font.withDefaults()

	out := AxisLayout{
		Font:          font,
		MaxLabelWidth: MaxLabelWidth(m, labels, font),
	}
	if len(labels) > 0 {
		out.PerLabel = innerWidth / float64(len(labels))
	}

	switch {
	case cfg.override != nil:
		out.Rotation = *cfg.override
	case cfg.autoRotate:
		out.Rotation = CalculateLabelRotation(innerWidth, labels, out.MaxLabelWidth)
	default:
		out.Rotation = RotateNone
	}

	out.Overlap = ShouldRotateLabels(innerWidth, labels, out.MaxLabelWidth, cfg.padding)
	out.Placement = PlacementFor(out.Rotation)
	return out
}
