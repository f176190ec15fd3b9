package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/loracharts/pkg/buildinfo"
)

// RootCommand creates the root cobra command with all subcommands registered.
//
// The config file is loaded before any subcommand runs, from --config or
// $XDG_CONFIG_HOME/loracharts/config.toml, and the CLI logger is attached to
// the command context so subcommands reach it through loggerFromContext.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Loracharts lays out chart labels and formats chart values",
		Long:         `Loracharts measures axis labels, decides how far they must rotate to avoid overlapping, and formats the numbers, dates and colors a chart displays.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(c.configPath)
			if err != nil {
				return err
			}
			c.config = cfg
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			c.Logger.Debug("config loaded", "heuristic", cfg.Heuristic, "cache_size", cfg.CacheSize)
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/loracharts/config.toml)")

	// Register all subcommands
	root.AddCommand(c.rotateCommand())
	root.AddCommand(c.measureCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.formatCommand())
	root.AddCommand(c.paletteCommand())
	root.AddCommand(c.colorCommand())
	root.AddCommand(c.themeCommand())
	root.AddCommand(c.scaleCommand())
	root.AddCommand(c.dataCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}
