package labels

import (
	"fmt"
	"math"
	"strconv"
	"unicode/utf8"
)

// heuristicCharWidth is the average glyph advance in em used when no
// measurement facility is available.
const heuristicCharWidth = 0.6

// TextMeasurer returns the rendered pixel width of text drawn with font.
// Implementations must be safe for concurrent use.
type TextMeasurer interface {
	Measure(text string, font Font) float64
}

// MeasurerFunc adapts a function to the TextMeasurer interface.
type MeasurerFunc func(text string, font Font) float64

// Measure calls f(text, font).
func (f MeasurerFunc) Measure(text string, font Font) float64 { return f(text, font) }

// HeuristicMeasurer approximates text width from its length alone:
// runes * size * 0.6. The family is ignored.
type HeuristicMeasurer struct{}

// Measure implements TextMeasurer.
func (HeuristicMeasurer) Measure(text string, font Font) float64 {
	return heuristicWidth(text, font.withDefaults().Size)
}

func heuristicWidth(text string, size float64) float64 {
	return float64(utf8.RuneCountInString(text)) * size * heuristicCharWidth
}

// EstimateTextWidth returns the pixel width of text.
//
// A nil measurer means no measurement facility is available and the heuristic
// is used. Zero font fields take DefaultFontSize and DefaultFontFamily. The
// result is never negative: a measurer returning a negative or non-finite width
// is replaced by the heuristic.
func EstimateTextWidth(m TextMeasurer, text string, font Font) float64 {
	font = font.withDefaults()
	if m == nil {
		return heuristicWidth(text, font.Size)
	}
	w := m.Measure(text, font)
	if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
		return heuristicWidth(text, font.Size)
	}
	return w
}

// MaxLabelWidth returns the largest EstimateTextWidth over labels, or 0 when
// labels is empty. Label order does not affect the result.
func MaxLabelWidth(m TextMeasurer, labels []string, font Font) float64 {
	var widest float64
	for _, label := range labels {
		widest = max(widest, EstimateTextWidth(m, label, font))
	}
	return widest
}

// Widths returns EstimateTextWidth for each label, in order.
func Widths(m TextMeasurer, labels []string, font Font) []float64 {
	out := make([]float64, len(labels))
	for i, label := range labels {
		out[i] = EstimateTextWidth(m, label, font)
	}
	return out
}

// Strings coerces arbitrary label values to their display strings.
func Strings[T any](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = fmt.Sprint(v)
	}
	return out
}

func formatPx(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}
