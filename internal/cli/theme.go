package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/loracharts/pkg/theme"
)

// themeCommand creates the theme command.
func (c *CLI) themeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show and validate chart themes",
	}

	cmd.AddCommand(c.themeShowCommand())
	cmd.AddCommand(c.themeValidateCommand())

	return cmd
}

// themeShowCommand creates the "theme show" subcommand.
func (c *CLI) themeShowCommand() *cobra.Command {
	var outFormat string

	cmd := &cobra.Command{
		Use:   "show [PATH]",
		Short: "Print a theme (default: the configured or built-in theme)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 1 {
				path = args[0]
			}
			t, err := c.loadTheme(path)
			if err != nil {
				return err
			}
			return theme.Encode(cmd.OutOrStdout(), t, theme.Format(outFormat))
		},
	}

	cmd.Flags().StringVar(&outFormat, "format", string(theme.FormatTOML), "output format: json or toml")

	return cmd
}

// themeValidateCommand creates the "theme validate" subcommand.
func (c *CLI) themeValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate PATH",
		Short: "Check a JSON or TOML theme file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := theme.Load(args[0])
			if err != nil {
				printError(cmd.ErrOrStderr(), "%s is not a valid theme", args[0])
				return err
			}
			out := cmd.OutOrStdout()
			printSuccess(out, "%s is a valid %s theme", args[0], t.Mode)
			printDetail(out, "font %s, primary %s", t.Fonts.Family, t.Colors.Primary)
			printNextStep(out, "Use it for charts", "loracharts render --theme "+args[0]+" data.csv")
			return nil
		},
	}
}
