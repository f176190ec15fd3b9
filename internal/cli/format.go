package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/loracharts/pkg/errors"
	"github.com/matzehuels/loracharts/pkg/format"
	"github.com/matzehuels/loracharts/pkg/observability"
)

// formatCommand creates the format command.
func (c *CLI) formatCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format",
		Short: "Format values and dates for display",
	}

	cmd.AddCommand(c.formatValueCommand())
	cmd.AddCommand(c.formatDateCommand())

	return cmd
}

// formatValueCommand creates the "format value" subcommand.
func (c *CLI) formatValueCommand() *cobra.Command {
	var kind, locale string

	cmd := &cobra.Command{
		Use:   "value [numbers...]",
		Short: "Format numbers as number, currency, percentage or compact",
		Example: `  loracharts format value --kind currency 1234.5
  loracharts format value --kind compact 1500 2500000
  loracharts format value --locale de-DE 1234.5`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := format.ParseValueKind(kind)
			if err != nil {
				return err
			}
			values, err := parseFloats(args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, v := range values {
				if k == format.Number && locale != "" {
					fmt.Fprintln(out, format.FormatNumber(v, locale))
				} else {
					fmt.Fprintln(out, format.FormatValue(v, k))
				}
			}
			observability.Layout().OnFormat(cmd.Context(), string(k), len(values))
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", string(format.Number), "number, currency, percentage or compact")
	cmd.Flags().StringVar(&locale, "locale", "", "BCP 47 locale for the number kind (e.g. de-DE)")
	_ = cmd.RegisterFlagCompletionFunc("kind", kindCompletion(format.ValueKinds))

	return cmd
}

// formatDateCommand creates the "format date" subcommand.
func (c *CLI) formatDateCommand() *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:     "date [dates...]",
		Short:   "Format dates as short, long or full",
		Example: `  loracharts format date --kind full 2024-03-05`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := format.ParseDateKind(kind)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, s := range args {
				t, err := format.ParseDate(s)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, format.FormatDate(t, k))
			}
			observability.Layout().OnFormat(cmd.Context(), "date-"+string(k), len(args))
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", string(format.Short), "short, long or full")
	_ = cmd.RegisterFlagCompletionFunc("kind", kindCompletion([]format.DateKind{format.Short, format.Long, format.Full}))

	return cmd
}

// kindCompletion completes a flag with the given kinds.
func kindCompletion[K ~string](kinds []K) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		out := make([]string, len(kinds))
		for i, k := range kinds {
			out[i] = string(k)
		}
		return out, cobra.ShellCompDirectiveNoFileComp
	}
}

// parseFloats parses each argument as a number.
func parseFloats(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, s := range args {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid number %q", s)
		}
		out[i] = v
	}
	return out, nil
}
