package cli

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/loracharts/pkg/errors"
	"github.com/matzehuels/loracharts/pkg/labels"
	"github.com/matzehuels/loracharts/pkg/observability"
)

// rotateOpts holds the command-line flags for the rotate command.
type rotateOpts struct {
	width      float64 // axis width in pixels
	maxWidth   float64 // widest label, skips measuring when set
	fontSize   float64
	fontFamily string
	padding    float64 // gap used for the overlap check
	rotation   string  // forced angle
	noAuto     bool    // keep labels horizontal
	heuristic  bool    // measure with the length heuristic
	json       bool
}

// rotateCommand creates the rotate command.
func (c *CLI) rotateCommand() *cobra.Command {
	opts := rotateOpts{padding: labels.DefaultLabelPadding}

	cmd := &cobra.Command{
		Use:   "rotate [labels...]",
		Short: "Pick the rotation for category axis labels",
		Long: `Pick the rotation for labels spread evenly over an axis.

Labels stay horizontal while each gets its full width, tilt to -45 degrees
while the tilted footprint fits, and stand vertical otherwise. Without
--max-width the labels are measured with the given font.`,
		Example: `  loracharts rotate --width 300 January February March April
  loracharts rotate --width 120 --max-width 60 a b c d`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRotate(cmd, args, opts, cmd.Flags().Changed("max-width"))
		},
	}

	cmd.Flags().Float64Var(&opts.width, "width", 0, "axis width in pixels (required)")
	cmd.Flags().Float64Var(&opts.maxWidth, "max-width", 0, "width of the widest label; skips measuring")
	cmd.Flags().Float64Var(&opts.fontSize, "font-size", 0, "font size in pixels (default axis size)")
	cmd.Flags().StringVar(&opts.fontFamily, "font-family", "", "CSS font family")
	cmd.Flags().Float64Var(&opts.padding, "padding", opts.padding, "gap between labels for the overlap check")
	cmd.Flags().StringVar(&opts.rotation, "rotation", "", "force an angle: 0, -45 or -90")
	cmd.Flags().BoolVar(&opts.noAuto, "no-auto-rotate", false, "keep labels horizontal")
	cmd.Flags().BoolVar(&opts.heuristic, "heuristic", false, "measure with the length heuristic")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print the layout as JSON")
	_ = cmd.MarkFlagRequired("width")

	return cmd
}

func (c *CLI) runRotate(cmd *cobra.Command, args []string, opts rotateOpts, fixedWidth bool) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	if err := errors.ValidateLabels(args); err != nil {
		return err
	}
	if err := validateWidth("width", opts.width); err != nil {
		return err
	}
	if err := errors.ValidateFinite("padding", opts.padding); err != nil {
		return err
	}

	font := c.font(opts.fontSize, opts.fontFamily)
	if err := errors.ValidateFontSize(font.Size); err != nil {
		return err
	}
	axisOpts := []labels.AxisOption{labels.WithPadding(opts.padding), labels.WithAutoRotate(!opts.noAuto)}
	if opts.rotation != "" {
		r, err := labels.ParseRotation(opts.rotation)
		if err != nil {
			return err
		}
		axisOpts = append(axisOpts, labels.WithRotation(r))
	}

	measurer := c.newMeasurer(opts.heuristic)
	if fixedWidth {
		if err := validateWidth("max-width", opts.maxWidth); err != nil {
			return err
		}
		fixed := opts.maxWidth
		measurer = labels.MeasurerFunc(func(string, labels.Font) float64 { return fixed })
	}

	start := time.Now()
	layout := labels.LayoutAxis(measurer, opts.width, args, font, axisOpts...)
	observability.Layout().OnAxisLayout(ctx, len(args), int(layout.Rotation), layout.Overlap, time.Since(start))
	logger.Debug("axis layout", "labels", len(args), "max_label_width", layout.MaxLabelWidth, "per_label", layout.PerLabel)

	out := cmd.OutOrStdout()
	if opts.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(layout)
	}

	printKeyValue(out, "rotation", layout.Rotation.String()+"°")
	printKeyValue(out, "overlap", strconv.FormatBool(layout.Overlap))
	printKeyValue(out, "max label width", px(layout.MaxLabelWidth))
	printKeyValue(out, "per label", px(layout.PerLabel))
	printKeyValue(out, "font", layout.Font.CSS())
	printKeyValue(out, "transform", layout.Placement.Transform)
	printKeyValue(out, "anchor", layout.Placement.Anchor)
	if layout.Overlap && layout.Rotation == labels.RotateNone {
		printWarning(out, "labels overlap at this width; consider --rotation -45")
	}
	return nil
}

// validateWidth rejects non-finite and negative pixel widths.
func validateWidth(name string, v float64) error {
	if err := errors.ValidateFinite(name, v); err != nil {
		return err
	}
	if v < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "%s cannot be negative", name)
	}
	return nil
}

// px formats a pixel width with at most two decimals.
func px(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64) + "px"
}
