// Package labels decides how axis labels fit along a chart axis.
//
// # Overview
//
// The package is a chain of small, pure functions:
//
//   - [EstimateTextWidth]: pixel width of one string for a [Font]
//   - [MaxLabelWidth]: widest label of a set
//   - [CalculateLabelRotation]: 0, -45 or -90 degrees for a label set
//   - [ShouldRotateLabels]: "would these labels overlap unrotated"
//
// plus helpers built on top of them: [TruncateText], [PlacementFor] and
// [LayoutAxis], which runs the whole chain the way a bar chart's category axis
// does.
//
// # Measurement
//
// Widths come from a [TextMeasurer]. [FaceMeasurer] measures with the embedded Go
// fonts; [HeuristicMeasurer] approximates every glyph as 0.6 em. Passing a nil
// measurer selects the heuristic, so code paths without a measurement facility
// degrade instead of failing:
//
//	w := labels.EstimateTextWidth(nil, "January", labels.Font{Size: 12})
//	// w == 7 * 12 * 0.6
//
// # Rotation
//
// [CalculateLabelRotation] compares the width each label gets when spread evenly
// across the axis with the widest label:
//
//	per := availableWidth / len(labels)
//	per >= maxLabelWidth         -> 0
//	per >= maxLabelWidth * 0.707 -> -45
//	otherwise                    -> -90
//
// [ShouldRotateLabels] adds a padding term to the same comparison and therefore
// reports overlap earlier than the angle selector switches away from 0. The two
// are kept separate on purpose: callers that only need a yes/no answer use the
// padded check, the renderer uses the angle.
//
// Non-positive or non-finite widths are not rejected; they fall through the
// comparisons and resolve to a rotated result.
package labels
