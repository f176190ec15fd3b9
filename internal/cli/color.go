package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/loracharts/pkg/colors"
	"github.com/matzehuels/loracharts/pkg/errors"
)

// maxPaletteColors bounds the palette command's --count.
const maxPaletteColors = 256

// paletteCommand creates the palette command.
func (c *CLI) paletteCommand() *cobra.Command {
	var (
		base  string
		count int
	)

	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Derive evenly spaced hues from a base color",
		Long: `Derive count colors from base by rotating its hue in equal steps while
keeping its saturation and lightness. Without --base the theme's primary
color is used.`,
		Example: `  loracharts palette --base "#ff0000" --count 3`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if base == "" {
				t, err := c.loadTheme("")
				if err != nil {
					return err
				}
				base = t.Colors.Primary
			}
			if _, err := colors.Parse(base); err != nil {
				return err
			}
			if count < 0 || count > maxPaletteColors {
				return errors.New(errors.ErrCodeInvalidInput, "count must be between 0 and %d", maxPaletteColors)
			}
			printColors(cmd.OutOrStdout(), colors.Palette(base, count)...)
			return nil
		},
	}

	cmd.Flags().StringVar(&base, "base", "", "base color (default theme primary)")
	cmd.Flags().IntVar(&count, "count", 5, "number of colors")

	return cmd
}

// colorCommand creates the color command.
func (c *CLI) colorCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "color",
		Short: "Adjust and convert colors",
	}

	cmd.AddCommand(c.colorAdjustCommand("lighten", "Lighten a color by k steps", colors.Lighten))
	cmd.AddCommand(c.colorAdjustCommand("darken", "Darken a color by k steps", colors.Darken))
	cmd.AddCommand(c.colorRGBACommand())

	return cmd
}

// colorAdjustCommand creates a lighten or darken subcommand.
func (c *CLI) colorAdjustCommand(use, short string, adjust func(string, float64) string) *cobra.Command {
	var amount float64

	cmd := &cobra.Command{
		Use:   use + " COLOR",
		Short: short,
		Long: short + `.

Each step scales the RGB channels by 0.7 (darken) or 1/0.7 (lighten). The
color may be hex, rgb(), rgba() or a CSS color name.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := colors.Parse(args[0]); err != nil {
				return err
			}
			if err := errors.ValidateFinite("amount", amount); err != nil {
				return err
			}
			printColors(cmd.OutOrStdout(), adjust(args[0], amount))
			return nil
		},
	}

	cmd.Flags().Float64VarP(&amount, "amount", "k", colors.DefaultAmount, "number of steps")

	return cmd
}

// colorRGBACommand creates the "color rgba" subcommand.
func (c *CLI) colorRGBACommand() *cobra.Command {
	var alpha float64

	cmd := &cobra.Command{
		Use:     "rgba HEX",
		Short:   "Convert a 6-digit hex color to rgba()",
		Example: `  loracharts color rgba "#007bff" --alpha 0.5`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if alpha < 0 || alpha > 1 {
				return errors.New(errors.ErrCodeInvalidInput, "alpha must be between 0 and 1")
			}
			out := colors.HexToRGBA(args[0], alpha)
			if out == args[0] {
				printWarning(cmd.ErrOrStderr(), "%q is not a 6-digit hex color; returned unchanged", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().Float64Var(&alpha, "alpha", 1, "alpha channel between 0 and 1")

	return cmd
}

// printColors prints each color with a swatch.
func printColors(w io.Writer, values ...string) {
	for _, v := range values {
		hex := ""
		if c, err := colors.Parse(v); err == nil {
			hex = c.Clamped().Hex()
		}
		fmt.Fprintln(w, swatch(hex)+" "+v)
	}
}
