package labels

import (
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"

	"github.com/matzehuels/loracharts/pkg/fonts"
)

// screenDPI makes one point equal one pixel, so Font.Size maps directly to
// the face size.
const screenDPI = 72

// FaceMeasurer measures text with the embedded Go fonts.
//
// Each call builds a throwaway face for the requested size, measures, and
// closes it. The parsed fonts themselves are shared. If the family cannot be
// loaded the measurer falls back to the length heuristic.
type FaceMeasurer struct{}

// Measure implements TextMeasurer.
func (FaceMeasurer) Measure(text string, f Font) float64 {
	f = f.withDefaults()
	if text == "" {
		return 0
	}
	ttf, err := fonts.ForFamily(f.Family)
	if err != nil {
		return heuristicWidth(text, f.Size)
	}
	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    f.Size,
		DPI:     screenDPI,
		Hinting: font.HintingNone,
	})
	defer face.Close()

	return float64(font.MeasureString(face, text)) / 64
}
