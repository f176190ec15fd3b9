package cli

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/loracharts/pkg/dataset"
	"github.com/matzehuels/loracharts/pkg/errors"
	"github.com/matzehuels/loracharts/pkg/format"
	"github.com/matzehuels/loracharts/pkg/labels"
	"github.com/matzehuels/loracharts/pkg/render"
	"github.com/matzehuels/loracharts/pkg/shape"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output    string  // output file path, stdout when empty
	format    string  // svg, pdf or png; inferred from output when empty
	inFormat  string  // csv or json; inferred from the input when empty
	width     float64 // chart width in pixels
	aspect    float64 // width:height
	title     string
	kind      string // value format for ticks and tooltips
	themePath string
	rotation  string // forced label angle
	aggregate string
	scale     float64 // PNG scale factor
	heuristic bool
}

// renderCommand creates the render command for drawing a bar chart.
//
// Default settings:
//   - width: 640px at a 16:9 aspect ratio
//   - format: inferred from --output, SVG on stdout
//   - labels: measured with the embedded fonts and rotated as needed
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{
		width:  render.DefaultWidth,
		aspect: shape.DefaultAspectRatio,
		kind:   string(format.Number),
		scale:  2,
	}

	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Render a data file as a bar chart",
		Long: `Render the points of a CSV or JSON data file as a category bar chart.

Category labels are measured and rotated so they do not overlap, and
truncated when rotation alone would use more than a third of the chart.
PDF and PNG output require rsvg-convert from librsvg.`,
		Example: `  loracharts render sales.csv -o sales.svg
  loracharts render sales.json --kind compact --title "Sales" -o sales.png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: svg, pdf or png")
	cmd.Flags().StringVar(&opts.inFormat, "input-format", "", "input format: csv or json")
	cmd.Flags().Float64Var(&opts.width, "width", opts.width, "chart width in pixels")
	cmd.Flags().Float64Var(&opts.aspect, "aspect", opts.aspect, "width to height ratio")
	cmd.Flags().StringVar(&opts.title, "title", "", "chart title")
	cmd.Flags().StringVar(&opts.kind, "kind", opts.kind, "value format: number, currency, percentage or compact")
	cmd.Flags().StringVar(&opts.themePath, "theme", "", "theme file (JSON or TOML)")
	cmd.Flags().StringVar(&opts.rotation, "rotation", "", "force a label angle: 0, -45 or -90")
	cmd.Flags().StringVar(&opts.aggregate, "aggregate", aggNone, "combine rows with the same label: sum, mean or count")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG scale factor")
	cmd.Flags().BoolVar(&opts.heuristic, "heuristic", false, "measure labels with the length heuristic")
	_ = cmd.RegisterFlagCompletionFunc("kind", kindCompletion(format.ValueKinds))

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, input string, opts renderOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	outFormat, err := outputFormat(opts.output, opts.format)
	if err != nil {
		return err
	}
	if err := validateWidth("width", opts.width); err != nil {
		return err
	}
	kind, err := format.ParseValueKind(opts.kind)
	if err != nil {
		return err
	}

	points, err := readPoints(input, opts.inFormat)
	if err != nil {
		return err
	}
	if points, err = aggregatePoints(points, opts.aggregate); err != nil {
		return err
	}
	logger.Debug("loaded data", "file", input, "points", len(points))

	chartOpts, err := c.barOptions(opts, kind)
	if err != nil {
		return err
	}
	data, err := renderChart(ctx, points, outFormat, opts.scale, chartOpts)
	if err != nil {
		return err
	}

	out, err := openOutput(opts.output, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer out.Close()
	if _, err := out.Write(data); err != nil {
		return err
	}

	if opts.output != "" {
		prog.done("Rendered " + filepath.Base(opts.output))
		printFile(cmd.ErrOrStderr(), opts.output)
	}
	return nil
}

func (c *CLI) barOptions(opts renderOpts, kind format.ValueKind) ([]render.BarOption, error) {
	t, err := c.loadTheme(opts.themePath)
	if err != nil {
		return nil, err
	}
	out := []render.BarOption{
		render.WithWidth(opts.width),
		render.WithAspect(opts.aspect),
		render.WithTheme(t),
		render.WithValueKind(kind),
		render.WithTitle(opts.title),
		render.WithMeasurer(c.newMeasurer(opts.heuristic)),
	}
	if opts.rotation != "" {
		r, err := labels.ParseRotation(opts.rotation)
		if err != nil {
			return nil, err
		}
		out = append(out, render.WithAxisOptions(labels.WithRotation(r)))
	}
	return out, nil
}

// renderChart draws the chart and converts it to outFormat.
func renderChart(ctx context.Context, points []dataset.Point, outFormat string, scale float64, opts []render.BarOption) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	svg := render.RenderBarSVG(points, opts...)
	return render.Convert(svg, outFormat, scale)
}

// outputFormat resolves the output format from the flag or the output file
// extension.
func outputFormat(output, flag string) (string, error) {
	f := strings.ToLower(flag)
	if f == "" {
		f = strings.TrimPrefix(strings.ToLower(filepath.Ext(output)), ".")
	}
	switch f {
	case "":
		return render.FormatSVG, nil
	case render.FormatSVG, render.FormatPDF, render.FormatPNG:
		return f, nil
	}
	return "", errors.New(errors.ErrCodeUnsupported, "unknown output format %q (must be svg, pdf or png)", f)
}
