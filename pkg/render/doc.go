// Package render draws charts as standalone SVG documents.
//
// # Overview
//
// [RenderBarSVG] lays out a category bar chart from a slice of points: a band
// scale places the bars, a linear scale with nice ticks sizes them, and the
// label chain in pkg/labels decides how the category labels are rotated so they
// do not overlap. Colors, fonts and spacing come from a [theme.Theme].
//
//	svg := render.RenderBarSVG(points,
//	    render.WithWidth(800),
//	    render.WithValueKind(format.Compact),
//	)
//
// # Format Conversion
//
// [ToPDF] and [ToPNG] convert any SVG to other formats using the external
// rsvg-convert tool (from librsvg).
//
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
package render
