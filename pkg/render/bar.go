package render

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"math"
	"strconv"

	"github.com/matzehuels/loracharts/pkg/dataset"
	"github.com/matzehuels/loracharts/pkg/format"
	"github.com/matzehuels/loracharts/pkg/labels"
	"github.com/matzehuels/loracharts/pkg/scale"
	"github.com/matzehuels/loracharts/pkg/shape"
	"github.com/matzehuels/loracharts/pkg/theme"
)

const (
	// DefaultWidth is the chart width used when none is set.
	DefaultWidth = 640.0

	// DefaultRadius is the corner radius of each bar.
	DefaultRadius = 4.0

	yTickCount = 5
	tickGap    = 6.0

	// sin45 is the vertical share of a label drawn at -45 degrees.
	sin45 = 0.707
)

// BarOption configures RenderBarSVG and LayoutBars.
type BarOption func(*barRenderer)

type barRenderer struct {
	width    float64
	aspect   float64
	theme    *theme.Theme
	measurer labels.TextMeasurer
	kind     format.ValueKind
	radius   float64
	title    string
	axisOpts []labels.AxisOption
}

func WithWidth(w float64) BarOption              { return func(r *barRenderer) { r.width = w } }
func WithAspect(a float64) BarOption             { return func(r *barRenderer) { r.aspect = a } }
func WithTheme(t *theme.Theme) BarOption         { return func(r *barRenderer) { r.theme = t } }
func WithValueKind(k format.ValueKind) BarOption { return func(r *barRenderer) { r.kind = k } }
func WithRadius(radius float64) BarOption        { return func(r *barRenderer) { r.radius = radius } }
func WithTitle(title string) BarOption           { return func(r *barRenderer) { r.title = title } }

// WithMeasurer sets the label measurer. Nil uses the length heuristic.
func WithMeasurer(m labels.TextMeasurer) BarOption {
	return func(r *barRenderer) { r.measurer = m }
}

// WithAxisOptions passes options through to labels.LayoutAxis.
func WithAxisOptions(opts ...labels.AxisOption) BarOption {
	return func(r *barRenderer) { r.axisOpts = append(r.axisOpts, opts...) }
}

func newBarRenderer(opts ...BarOption) barRenderer {
	r := barRenderer{
		width:  DefaultWidth,
		aspect: shape.DefaultAspectRatio,
		kind:   format.Number,
		radius: DefaultRadius,
	}
	for _, opt := range opts {
		opt(&r)
	}
	if !(r.width > 0) || math.IsInf(r.width, 0) {
		r.width = DefaultWidth
	}
	if r.theme == nil {
		r.theme = theme.Default()
	}
	return r
}

// Rect is an axis-aligned box in SVG user units.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Tick is one value-axis gridline.
type Tick struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
	Y     float64 `json:"y"`
}

// Bar is one drawn category.
type Bar struct {
	Label   string  `json:"label"`
	Display string  `json:"display"`
	Value   float64 `json:"value"`
	Text    string  `json:"text"`
	Color   string  `json:"color"`
	Center  float64 `json:"center"`
	Rect    Rect    `json:"rect"`
	Drawn   bool    `json:"drawn"`
}

// BarLayout is the geometry of a bar chart.
type BarLayout struct {
	Width    float64           `json:"width"`
	Height   float64           `json:"height"`
	Plot     Rect              `json:"plot"`
	Baseline float64           `json:"baseline"`
	Axis     labels.AxisLayout `json:"axis"`
	Ticks    []Tick            `json:"ticks"`
	Bars     []Bar             `json:"bars"`
}

// LayoutBars computes the bar chart geometry for points without drawing it.
//
// The value axis always includes zero and is extended to whole tick steps.
// Non-finite values keep their category slot but get no bar. When rotated
// category labels would take more than a third of the chart height they are
// truncated to fit.
func LayoutBars(points []dataset.Point, opts ...BarOption) BarLayout {
	r := newBarRenderer(opts...)
	return r.layout(points)
}

// RenderBarSVG renders points as a category bar chart.
func RenderBarSVG(points []dataset.Point, opts ...BarOption) []byte {
	r := newBarRenderer(opts...)
	return r.svg(r.layout(points))
}

func (r barRenderer) layout(points []dataset.Point) BarLayout {
	w, h := shape.ResponsiveDimensions(r.width, r.aspect)
	sp := r.theme.Spacing
	font := r.theme.Font(theme.SM)

	top, right := sp.Get(theme.MD), sp.Get(theme.MD)
	if r.title != "" {
		top += r.theme.Fonts.Size.Get(theme.LG) + sp.Get(theme.SM)
	}

	lo, hi := valueDomain(points)
	ticks := scale.Ticks(lo, hi, yTickCount)
	tickLabels := make([]string, len(ticks))
	for i, t := range ticks {
		tickLabels[i] = format.FormatValue(t, r.kind)
	}
	left := sp.Get(theme.MD) + labels.MaxLabelWidth(r.measurer, tickLabels, font) + tickGap
	innerW := math.Max(w-left-right, 1)

	cats := dataset.Labels(points)
	axis := labels.LayoutAxis(r.measurer, innerW, cats, font, r.axisOpts...)

	display, extent := r.fitLabels(cats, axis, h)
	bottom := tickGap + extent + sp.Get(theme.SM)
	innerH := math.Max(h-top-bottom, 1)

	y := scale.NewLinear(lo, hi, top+innerH, top)
	x := scale.NewBand(cats, left, left+innerW)
	colors := r.theme.SeriesColors(len(points))

	out := BarLayout{
		Width:    w,
		Height:   h,
		Plot:     Rect{X: left, Y: top, W: innerW, H: innerH},
		Baseline: y.Map(0),
		Axis:     axis,
		Ticks:    make([]Tick, len(ticks)),
		Bars:     make([]Bar, 0, len(points)),
	}
	for i, t := range ticks {
		out.Ticks[i] = Tick{Value: t, Label: tickLabels[i], Y: y.Map(t)}
	}

	for i, p := range points {
		bx, ok := x.Map(p.Label)
		if !ok {
			continue
		}
		bar := Bar{
			Label:   p.Label,
			Display: display[i],
			Value:   p.Value,
			Text:    format.FormatValue(p.Value, r.kind),
			Color:   p.Color,
			Center:  bx + x.Bandwidth()/2,
		}
		if bar.Color == "" && len(colors) > 0 {
			bar.Color = colors[i%len(colors)]
		}
		if finite(p.Value) {
			yv := y.Map(p.Value)
			bar.Rect = Rect{X: bx, Y: math.Min(yv, out.Baseline), W: x.Bandwidth(), H: math.Abs(yv - out.Baseline)}
			bar.Drawn = true
		}
		out.Bars = append(out.Bars, bar)
	}
	return out
}

// fitLabels returns the category labels to draw and the vertical space they
// need below the plot, truncating rotated labels that would exceed a third of
// the chart height.
func (r barRenderer) fitLabels(cats []string, axis labels.AxisLayout, height float64) ([]string, float64) {
	display := append([]string(nil), cats...)
	size := axis.Font.Size

	var extent, share float64
	switch axis.Rotation {
	case labels.RotateNone:
		return display, size
	case labels.Rotate45:
		share = sin45
		extent = (axis.MaxLabelWidth + size) * sin45
	default:
		share = 1
		extent = axis.MaxLabelWidth
	}

	budget := height/3 - tickGap - r.theme.Spacing.Get(theme.SM)
	if extent <= budget || budget <= 0 {
		return display, extent
	}
	maxWidth := budget / share
	if axis.Rotation == labels.Rotate45 {
		maxWidth -= size
	}
	for i, label := range display {
		display[i] = labels.TruncateText(r.measurer, label, maxWidth, axis.Font)
	}
	return display, budget
}

// valueDomain returns a value-axis domain that includes zero and ends on tick
// steps.
func valueDomain(points []dataset.Point) (lo, hi float64) {
	values := make([]float64, 0, len(points))
	for _, p := range points {
		if finite(p.Value) {
			values = append(values, p.Value)
		}
	}
	lo, hi, ok := dataset.Extent(values)
	if !ok {
		return 0, 1
	}
	lo, hi = math.Min(lo, 0), math.Max(hi, 0)
	if lo == hi {
		return 0, 1
	}
	if step := scale.TickStep(lo, hi, yTickCount); step > 0 {
		lo = math.Floor(lo/step) * step
		hi = math.Ceil(hi/step) * step
	}
	return lo, hi
}

func (r barRenderer) svg(l BarLayout) []byte {
	t := r.theme
	fontSize := t.Fonts.Size.Get(theme.SM)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%s" height="%s" font-family="%s" font-size="%s">`+"\n",
		num(l.Width), num(l.Height), num(l.Width), num(l.Height), escapeXML(t.Fonts.Family), num(fontSize))
	fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", escapeXML(t.Colors.Background))

	if r.title != "" {
		fmt.Fprintf(&buf, `  <text class="title" x="%s" y="%s" font-size="%s" font-weight="bold" fill="%s">%s</text>`+"\n",
			num(l.Plot.X), num(t.Spacing.Get(theme.MD)+t.Fonts.Size.Get(theme.LG)*0.8),
			num(t.Fonts.Size.Get(theme.LG)), escapeXML(t.Colors.Text), escapeXML(r.title))
	}

	buf.WriteString(`  <g class="grid">` + "\n")
	for _, tick := range l.Ticks {
		fmt.Fprintf(&buf, `    <line x1="%s" x2="%s" y1="%s" y2="%s" stroke="%s"/>`+"\n",
			num(l.Plot.X), num(l.Plot.X+l.Plot.W), num(tick.Y), num(tick.Y), escapeXML(t.Colors.Border))
		fmt.Fprintf(&buf, `    <text x="%s" y="%s" dy="0.32em" text-anchor="end" fill="%s">%s</text>`+"\n",
			num(l.Plot.X-tickGap), num(tick.Y), escapeXML(t.Colors.Text), escapeXML(tick.Label))
	}
	buf.WriteString("  </g>\n")

	buf.WriteString(`  <g class="bars">` + "\n")
	for _, bar := range l.Bars {
		if !bar.Drawn {
			continue
		}
		d := shape.RoundedRect(bar.Rect.X, bar.Rect.Y, bar.Rect.W, bar.Rect.H, r.radius)
		fmt.Fprintf(&buf, `    <path class="bar" d="%s" fill="%s"><title>%s: %s</title></path>`+"\n",
			d, escapeXML(bar.Color), escapeXML(bar.Label), escapeXML(bar.Text))
	}
	buf.WriteString("  </g>\n")

	fmt.Fprintf(&buf, `  <line class="axis" x1="%s" x2="%s" y1="%s" y2="%s" stroke="%s"/>`+"\n",
		num(l.Plot.X), num(l.Plot.X+l.Plot.W), num(l.Baseline), num(l.Baseline), escapeXML(t.Colors.Text))

	p := l.Axis.Placement
	labelY := l.Plot.Y + l.Plot.H + tickGap
	buf.WriteString(`  <g class="labels">` + "\n")
	for _, bar := range l.Bars {
		fmt.Fprintf(&buf, `    <g transform="translate(%s,%s)"><text transform="%s" dx="%s" dy="%s" text-anchor="%s" fill="%s">%s</text></g>`+"\n",
			num(bar.Center), num(labelY), p.Transform, p.DX, p.DY, p.Anchor, escapeXML(t.Colors.Text), escapeXML(bar.Display))
	}
	buf.WriteString("  </g>\n")

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// num formats an SVG coordinate with at most two decimals.
func num(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
