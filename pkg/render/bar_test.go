package render

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/matzehuels/loracharts/pkg/dataset"
	"github.com/matzehuels/loracharts/pkg/errors"
	"github.com/matzehuels/loracharts/pkg/format"
	"github.com/matzehuels/loracharts/pkg/labels"
	"github.com/matzehuels/loracharts/pkg/theme"
)

func points(values ...float64) []dataset.Point {
	out := make([]dataset.Point, len(values))
	for i, v := range values {
		out[i] = dataset.Point{Label: string(rune('a' + i)), Value: v}
	}
	return out
}

func TestLayoutBars(t *testing.T) {
	l := LayoutBars(points(10, 20, 30))

	if l.Width != 640 || l.Height != 360 {
		t.Errorf("size = %vx%v, want 640x360", l.Width, l.Height)
	}
	if len(l.Bars) != 3 {
		t.Fatalf("bars = %d, want 3", len(l.Bars))
	}
	if first, last := l.Ticks[0], l.Ticks[len(l.Ticks)-1]; first.Value != 0 || last.Value != 30 {
		t.Errorf("ticks span %v..%v, want 0..30", first.Value, last.Value)
	}
	if l.Axis.Rotation != labels.RotateNone {
		t.Errorf("rotation = %v, want 0", l.Axis.Rotation)
	}

	for i, bar := range l.Bars {
		if !bar.Drawn {
			t.Fatalf("bar %d not drawn", i)
		}
		if bar.Rect.X < l.Plot.X || bar.Rect.X+bar.Rect.W > l.Plot.X+l.Plot.W+1e-9 {
			t.Errorf("bar %d outside plot horizontally: %+v", i, bar.Rect)
		}
		if math.Abs(bar.Rect.Y+bar.Rect.H-l.Baseline) > 1e-9 {
			t.Errorf("bar %d does not rest on the baseline", i)
		}
		if i > 0 && !(bar.Rect.H > l.Bars[i-1].Rect.H) {
			t.Errorf("bar %d should be taller than bar %d", i, i-1)
		}
	}
	if math.Abs(l.Bars[2].Rect.Y-l.Plot.Y) > 1e-9 {
		t.Errorf("largest bar top = %v, want plot top %v", l.Bars[2].Rect.Y, l.Plot.Y)
	}
}

func TestLayoutBarsNegative(t *testing.T) {
	l := LayoutBars(points(-10, 20))

	if !(l.Baseline > l.Plot.Y && l.Baseline < l.Plot.Y+l.Plot.H) {
		t.Errorf("baseline %v should be inside the plot %+v", l.Baseline, l.Plot)
	}
	neg := l.Bars[0].Rect
	if math.Abs(neg.Y-l.Baseline) > 1e-9 || !(neg.H > 0) {
		t.Errorf("negative bar should hang from the baseline: %+v", neg)
	}
}

func TestLayoutBarsTruncatesRotatedLabels(t *testing.T) {
	var pts []dataset.Point
	for i := 1; i <= 12; i++ {
		pts = append(pts, dataset.Point{Label: fmt.Sprintf("category label number %02d", i), Value: float64(i)})
	}
	l := LayoutBars(pts, WithWidth(300))

	if l.Axis.Rotation != labels.Rotate90 {
		t.Fatalf("rotation = %v, want -90", l.Axis.Rotation)
	}
	budget := l.Height/3 - tickGap - theme.Default().Spacing.SM
	for _, bar := range l.Bars {
		if !strings.HasSuffix(bar.Display, labels.Ellipsis) {
			t.Errorf("label %q should be truncated, got %q", bar.Label, bar.Display)
		}
		if w := labels.EstimateTextWidth(nil, bar.Display, l.Axis.Font); w > budget {
			t.Errorf("display %q is %vpx, budget %vpx", bar.Display, w, budget)
		}
	}
}

func TestLayoutBarsNonFinite(t *testing.T) {
	l := LayoutBars(points(5, math.NaN(), math.Inf(1)))

	if len(l.Bars) != 3 {
		t.Fatalf("bars = %d, want 3", len(l.Bars))
	}
	if !l.Bars[0].Drawn || l.Bars[1].Drawn || l.Bars[2].Drawn {
		t.Errorf("only the finite bar should be drawn: %v %v %v", l.Bars[0].Drawn, l.Bars[1].Drawn, l.Bars[2].Drawn)
	}
	svg := string(RenderBarSVG(points(5, math.NaN())))
	if got := strings.Count(svg, `class="bar"`); got != 1 {
		t.Errorf("svg has %d bars, want 1", got)
	}
}

func TestRenderBarSVG(t *testing.T) {
	pts := []dataset.Point{
		{Label: "<b>&", Value: 1500, Color: "#123456"},
		{Label: "plain", Value: 2500},
	}
	svg := string(RenderBarSVG(pts, WithTitle("Sales"), WithValueKind(format.Compact)))

	for _, want := range []string{
		`<svg xmlns="http://www.w3.org/2000/svg"`,
		`class="title"`,
		`&lt;b&gt;&amp;`,
		`fill="#123456"`,
		`<title>plain: 2.5K</title>`,
		`transform="rotate(0)"`,
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("svg missing %q", want)
		}
	}
	if !strings.HasSuffix(svg, "</svg>\n") {
		t.Error("svg should end with a closing tag")
	}
}

func TestRenderBarSVGEmpty(t *testing.T) {
	l := LayoutBars(nil)
	if len(l.Bars) != 0 || len(l.Ticks) == 0 {
		t.Errorf("empty chart: %d bars, %d ticks", len(l.Bars), len(l.Ticks))
	}
	if svg := string(RenderBarSVG(nil)); strings.Contains(svg, `class="bar"`) {
		t.Error("empty chart should draw no bars")
	}
}

func TestLayoutBarsTitleShrinksPlot(t *testing.T) {
	plain := LayoutBars(points(1, 2))
	titled := LayoutBars(points(1, 2), WithTitle("t"))
	if !(titled.Plot.Y > plain.Plot.Y) {
		t.Errorf("title should push the plot down: %v vs %v", titled.Plot.Y, plain.Plot.Y)
	}
}

func TestConvert(t *testing.T) {
	svg := []byte("<svg/>")

	out, err := Convert(svg, FormatSVG, 1)
	if err != nil || string(out) != "<svg/>" {
		t.Errorf("Convert(svg) = %q, %v", out, err)
	}

	if _, err := Convert(svg, "gif", 1); !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("Convert(gif) error = %v, want UNSUPPORTED", err)
	}

	old := converter
	converter = "loracharts-missing-converter"
	defer func() { converter = old }()
	if _, err := ToPDF(svg); !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("ToPDF without converter error = %v, want UNSUPPORTED", err)
	}
}
