package cli

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/loracharts/pkg/colors"
	"github.com/matzehuels/loracharts/pkg/dataset"
	"github.com/matzehuels/loracharts/pkg/errors"
	"github.com/matzehuels/loracharts/pkg/format"
)

// Aggregations accepted by --aggregate.
const (
	aggNone  = ""
	aggSum   = "sum"
	aggMean  = "mean"
	aggCount = "count"
)

// dataCommand creates the data command.
func (c *CLI) dataCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "data",
		Short: "Inspect chart data files",
	}

	cmd.AddCommand(c.dataSummaryCommand())

	return cmd
}

// dataSummaryCommand creates the "data summary" subcommand.
func (c *CLI) dataSummaryCommand() *cobra.Command {
	var (
		inFormat  string
		kind      string
		aggregate string
		themePath string
	)

	cmd := &cobra.Command{
		Use:   "summary FILE",
		Short: "Print a data file with formatted values and shares",
		Long: `Print the points of a CSV or JSON data file.

CSV files hold label,value[,color] rows with an optional header. JSON files
hold an array of {"label", "value", "color"} objects. With --aggregate, rows
sharing a label are combined. The share column is the value rescaled so the
smallest is 0 and the largest is 1.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := format.ParseValueKind(kind)
			if err != nil {
				return err
			}
			points, err := readPoints(args[0], inFormat)
			if err != nil {
				return err
			}
			if points, err = aggregatePoints(points, aggregate); err != nil {
				return err
			}
			t, err := c.loadTheme(themePath)
			if err != nil {
				return err
			}

			series := t.SeriesColors(len(points))
			shares := dataset.Normalize(dataset.Values(points))
			table := newTable("", "Label", "Value", "Share")
			for i, p := range points {
				color := p.Color
				if color == "" && i < len(series) {
					color = series[i]
				}
				hex := ""
				if cc, err := colors.Parse(color); err == nil {
					hex = cc.Clamped().Hex()
				}
				table.Row(swatch(hex), p.Label, format.FormatValue(p.Value, k), strconv.FormatFloat(shares[i], 'f', 2, 64))
			}

			out := cmd.OutOrStdout()
			printTable(out, table)
			if lo, hi, ok := dataset.Extent(dataset.Values(points)); ok {
				printDetail(out, "%d points, min %s, max %s", len(points), format.FormatValue(lo, k), format.FormatValue(hi, k))
			} else {
				printInfo(out, "no values")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&inFormat, "format", "", "input format: csv or json (default from extension)")
	cmd.Flags().StringVar(&kind, "kind", string(format.Number), "value format: number, currency, percentage or compact")
	cmd.Flags().StringVar(&aggregate, "aggregate", aggNone, "combine rows with the same label: sum, mean or count")
	cmd.Flags().StringVar(&themePath, "theme", "", "theme file for series colors")

	return cmd
}

// readPoints decodes the data file at path. An empty format is taken from the
// file extension.
func readPoints(path, inFormat string) ([]dataset.Point, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	if inFormat == "" {
		inFormat = strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	}
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "data file %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "open %s", path)
	}
	defer f.Close()
	return dataset.DecodePoints(f, inFormat)
}

// aggregatePoints combines points sharing a label. The first color seen for a
// label is kept.
func aggregatePoints(points []dataset.Point, how string) ([]dataset.Point, error) {
	var agg func([]dataset.Point) float64
	value := func(p dataset.Point) float64 { return p.Value }
	switch strings.ToLower(how) {
	case aggNone:
		return points, nil
	case aggSum:
		agg = dataset.Sum(value)
	case aggMean:
		agg = dataset.Mean(value)
	case aggCount:
		agg = dataset.Count[dataset.Point]
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown aggregation %q (must be sum, mean or count)", how)
	}

	firstColor := make(map[string]string)
	for _, p := range points {
		if _, ok := firstColor[p.Label]; !ok {
			firstColor[p.Label] = p.Color
		}
	}
	out := dataset.Aggregate(points, func(p dataset.Point) string { return p.Label }, agg)
	for i := range out {
		out[i].Color = firstColor[out[i].Label]
	}
	return out, nil
}
