// Package pkg provides the libraries behind loracharts: the layout decisions,
// formatting and color helpers a chart renderer needs.
//
// # Overview
//
// Loracharts does not draw charts itself (apart from the small bar chart in
// [render]). It answers the questions a renderer asks while building an SVG:
// how wide is this label, must the axis labels rotate, how should 1234567 read
// on a tooltip, which colors do the series get. The pkg directory is organized
// into four areas:
//
//  1. Label layout - [labels], [fonts], [cache]
//  2. Display values - [format], [colors], [theme]
//  3. Geometry - [scale], [shape], [dataset], [render]
//  4. Service - [api], [observability], [errors], [buildinfo]
//
// # Architecture
//
// The label layout chain:
//
//	labels (strings)
//	     ↓
//	[labels.TextMeasurer] (embedded font face or length heuristic, optionally cached)
//	     ↓
//	[labels.MaxLabelWidth]
//	     ↓
//	[labels.CalculateLabelRotation] → 0, -45 or -90
//	     ↓
//	[labels.PlacementFor] (transform, dx, dy, text-anchor)
//
// [labels.LayoutAxis] runs the whole chain for one axis.
//
// # Quick Start
//
// Decide how the labels of a 300px category axis are drawn:
//
//	import "github.com/matzehuels/loracharts/pkg/labels"
//
//	m := labels.FaceMeasurer{}
//	layout := labels.LayoutAxis(m, 300, []string{"January", "February", "March"}, labels.Font{})
//	fmt.Println(layout.Rotation, layout.Placement.Transform)
//
// # Main Packages
//
// [labels] - Text measurement, the rotation decision, overlap check,
// truncation and per-angle placement attributes.
//
// [fonts] - Embedded Go fonts resolved from CSS font-family lists.
//
// [cache] - Width caches ([cache.LRU], [cache.NullCache]) used by
// [labels.CachedMeasurer].
//
// [format] - Number, currency, percentage and compact value formatting,
// locale-aware numbers and date formatting.
//
// [colors] - hex to rgba, lighten/darken and hue-rotated palettes.
//
// [theme] - Design tokens loaded from JSON or TOML, with validation.
//
// [scale] - Linear, log, sqrt, time, band and ordinal scales with nice ticks.
//
// [shape] - Rounded rectangle paths and responsive chart dimensions.
//
// [dataset] - Chart data points: decoding, normalization and aggregation.
//
// [render] - A category bar chart drawn to SVG, with PDF/PNG conversion.
//
// [api] - The JSON service over the packages above.
//
// [observability] - Layout and HTTP hooks, with a Prometheus implementation.
//
// # Common Workflows
//
// Format values for a tooltip:
//
//	format.FormatValue(1500000, format.Compact) // "1.5M"
//	format.FormatValue(1234.5, format.Currency) // "$1,234.50"
//
// Color five series from one base color:
//
//	colors.Palette("#007bff", 5)
//
// Place bars on a band scale:
//
//	b := scale.NewBand([]string{"a", "b", "c"}, 0, 600)
//	x, _ := b.Map("b")
//	d := shape.RoundedRect(x, 100, b.Bandwidth(), 200, 4)
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/labels/...    # Specific package
//	go test -run Example ./...  # Examples only
//
// [labels]: https://pkg.go.dev/github.com/matzehuels/loracharts/pkg/labels
// [fonts]: https://pkg.go.dev/github.com/matzehuels/loracharts/pkg/fonts
// [cache]: https://pkg.go.dev/github.com/matzehuels/loracharts/pkg/cache
// [format]: https://pkg.go.dev/github.com/matzehuels/loracharts/pkg/format
// [colors]: https://pkg.go.dev/github.com/matzehuels/loracharts/pkg/colors
// [theme]: https://pkg.go.dev/github.com/matzehuels/loracharts/pkg/theme
// [scale]: https://pkg.go.dev/github.com/matzehuels/loracharts/pkg/scale
// [shape]: https://pkg.go.dev/github.com/matzehuels/loracharts/pkg/shape
// [dataset]: https://pkg.go.dev/github.com/matzehuels/loracharts/pkg/dataset
// [render]: https://pkg.go.dev/github.com/matzehuels/loracharts/pkg/render
// [api]: https://pkg.go.dev/github.com/matzehuels/loracharts/pkg/api
// [observability]: https://pkg.go.dev/github.com/matzehuels/loracharts/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/loracharts/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/loracharts/pkg/buildinfo
package pkg
