package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/loracharts/pkg/errors"
	"github.com/matzehuels/loracharts/pkg/labels"
)

// measureCommand creates the measure command.
func (c *CLI) measureCommand() *cobra.Command {
	var (
		fontSize   float64
		fontFamily string
		heuristic  bool
		truncate   float64
	)

	cmd := &cobra.Command{
		Use:   "measure [texts...]",
		Short: "Measure the rendered width of label text",
		Long: `Measure how wide each text renders with the given font.

Widths come from the embedded Go fonts unless --heuristic is set, in which
case every rune counts as 0.6em. With --truncate each text is also shortened
to fit the given width.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.ValidateLabels(args); err != nil {
				return err
			}
			font := c.font(fontSize, fontFamily)
			if err := errors.ValidateFontSize(font.Size); err != nil {
				return err
			}
			doTruncate := cmd.Flags().Changed("truncate")
			if doTruncate {
				if err := validateWidth("truncate", truncate); err != nil {
					return err
				}
			}

			m := c.newMeasurer(heuristic)
			headers := []string{"Text", "Width"}
			if doTruncate {
				headers = append(headers, "Fitted")
			}
			t := newTable(headers...)
			for i, w := range labels.Widths(m, args, font) {
				row := []string{args[i], px(w)}
				if doTruncate {
					row = append(row, labels.TruncateText(m, args[i], truncate, font))
				}
				t.Row(row...)
			}

			out := cmd.OutOrStdout()
			printTable(out, t)
			printDetail(out, "font %s, widest %s", font.CSS(), px(labels.MaxLabelWidth(m, args, font)))
			if cm, ok := m.(*labels.CachedMeasurer); ok {
				s := cm.Stats()
				loggerFromContext(cmd.Context()).Debug("width cache",
					"hits", s.Hits, "misses", s.Misses, "ratio", strconv.FormatFloat(s.HitRatio(), 'f', 2, 64))
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&fontSize, "font-size", 0, "font size in pixels (default 12)")
	cmd.Flags().StringVar(&fontFamily, "font-family", "", "CSS font family")
	cmd.Flags().BoolVar(&heuristic, "heuristic", false, "measure with the length heuristic")
	cmd.Flags().Float64Var(&truncate, "truncate", 0, "also fit each text into this many pixels")

	return cmd
}
