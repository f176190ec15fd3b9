package cli

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/loracharts/pkg/errors"
	"github.com/matzehuels/loracharts/pkg/format"
	"github.com/matzehuels/loracharts/pkg/scale"
)

// maxTickCount bounds the scale commands' --count.
const maxTickCount = 1000

// scaleCommand creates the scale command.
func (c *CLI) scaleCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scale",
		Short: "Inspect scale ticks and band positions",
	}

	cmd.AddCommand(c.scaleTicksCommand())
	cmd.AddCommand(c.scaleBandCommand())

	return cmd
}

// scaleTicksCommand creates the "scale ticks" subcommand.
func (c *CLI) scaleTicksCommand() *cobra.Command {
	var (
		kind   string
		domain []string
		rng    []float64
		count  int
	)

	cmd := &cobra.Command{
		Use:   "ticks",
		Short: "Print nice ticks for a domain and where they land in the range",
		Long: `Print nice ticks for a domain and where they land in the range.

Linear, sqrt and log scales take a numeric domain. Time scales take two dates
(YYYY-MM-DD or RFC 3339) and tick on calendar-friendly intervals.`,
		Example: `  loracharts scale ticks --domain 0,100 --range 0,500 --count 5
  loracharts scale ticks --kind time --domain 2024-01-01,2024-01-31 --range 0,800`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(domain) != 2 || len(rng) != 2 {
				return errors.New(errors.ErrCodeInvalidInput, "--domain and --range need exactly two values")
			}
			if count <= 0 || count > maxTickCount {
				return errors.New(errors.ErrCodeInvalidInput, "count must be between 1 and %d", maxTickCount)
			}

			k := scale.ParseKind(kind)
			t := newTable("Tick", "Position")
			switch k {
			case scale.KindBand:
				return errors.New(errors.ErrCodeUnsupported, "band scales have no ticks; use scale band")
			case scale.KindTime:
				start, err := format.ParseDate(domain[0])
				if err != nil {
					return err
				}
				end, err := format.ParseDate(domain[1])
				if err != nil {
					return err
				}
				ts := scale.NewTime(start, end, rng[0], rng[1])
				for _, tick := range ts.Ticks(count) {
					t.Row(tick.Format("2006-01-02 15:04"), strconv.FormatFloat(ts.Map(tick), 'f', -1, 64))
				}
				loggerFromContext(cmd.Context()).Debug("time ticks", "interval", ts.TickInterval(count))
			default:
				d, err := parseFloats(domain)
				if err != nil {
					return err
				}
				if k == scale.KindLog && d[0]*d[1] <= 0 {
					return errors.New(errors.ErrCodeInvalidInput, "log domain must not include or cross zero")
				}
				s := scale.New(k, d, rng)
				for _, tick := range s.Ticks(count) {
					t.Row(strconv.FormatFloat(tick, 'f', -1, 64), strconv.FormatFloat(s.Map(tick), 'f', -1, 64))
				}
			}

			printTable(cmd.OutOrStdout(), t)
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", string(scale.KindLinear), "linear, log, sqrt or time")
	cmd.Flags().StringSliceVar(&domain, "domain", []string{"0", "1"}, "domain bounds")
	cmd.Flags().Float64SliceVar(&rng, "range", []float64{0, 1}, "range bounds")
	cmd.Flags().IntVar(&count, "count", 10, "approximate number of ticks")

	return cmd
}

// scaleBandCommand creates the "scale band" subcommand.
func (c *CLI) scaleBandCommand() *cobra.Command {
	var (
		rng          []float64
		inner, outer float64
	)

	cmd := &cobra.Command{
		Use:     "band [keys...]",
		Short:   "Print the band each category occupies in the range",
		Example: `  loracharts scale band --range 0,100 a b c`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(rng) != 2 {
				return errors.New(errors.ErrCodeInvalidInput, "--range needs exactly two values")
			}
			if inner < 0 || inner >= 1 || outer < 0 {
				return errors.New(errors.ErrCodeInvalidInput, "padding must satisfy 0 <= inner < 1 and outer >= 0")
			}
			b := scale.NewBandPadding(args, rng[0], rng[1], inner, outer)

			t := newTable("Key", "Start", "Width")
			for _, key := range b.Keys() {
				pos, _ := b.Map(key)
				t.Row(key, strconv.FormatFloat(pos, 'f', 2, 64), strconv.FormatFloat(b.Bandwidth(), 'f', 2, 64))
			}
			out := cmd.OutOrStdout()
			printTable(out, t)
			printDetail(out, "step %s, keys %s", strconv.FormatFloat(b.Step(), 'f', 2, 64), strings.Join(b.Keys(), ", "))
			return nil
		},
	}

	cmd.Flags().Float64SliceVar(&rng, "range", []float64{0, 1}, "range bounds")
	cmd.Flags().Float64Var(&inner, "padding-inner", 0.2, "gap between bands as a share of the step")
	cmd.Flags().Float64Var(&outer, "padding-outer", 0.2, "gap before the first and after the last band")

	return cmd
}
