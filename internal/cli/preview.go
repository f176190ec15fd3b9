package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/loracharts/pkg/errors"
)

// previewCommand creates the preview command.
func (c *CLI) previewCommand() *cobra.Command {
	var (
		width     float64
		step      float64
		fontSize  float64
		heuristic bool
	)

	cmd := &cobra.Command{
		Use:   "preview [labels...]",
		Short: "Interactively resize an axis and watch its labels rotate",
		Long: `Open an interactive view of an axis holding the given labels.

Use the arrow keys to change the axis width and font size. The rotation,
overlap and per-label width update as you go.`,
		Example: `  loracharts preview --width 400 January February March April May June`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.ValidateLabels(args); err != nil {
				return err
			}
			if err := validateWidth("width", width); err != nil {
				return err
			}
			if err := validateWidth("step", step); err != nil {
				return err
			}
			font := c.font(fontSize, "")
			if err := errors.ValidateFontSize(font.Size); err != nil {
				return err
			}

			m := NewPreviewModel(c.newMeasurer(heuristic), args, width, step, font)
			p := tea.NewProgram(m,
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			final, err := p.Run()
			if err != nil {
				return errors.Wrap(errors.ErrCodeInternal, err, "preview")
			}
			if fm, ok := final.(PreviewModel); ok {
				loggerFromContext(cmd.Context()).Debug("preview closed",
					"width", fm.Width, "font_size", fm.Font.Size, "rotation", fm.Layout.Rotation.String())
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&width, "width", 400, "initial axis width in pixels")
	cmd.Flags().Float64Var(&step, "step", 20, "pixels added or removed per key press")
	cmd.Flags().Float64Var(&fontSize, "font-size", 0, "initial font size in pixels")
	cmd.Flags().BoolVar(&heuristic, "heuristic", false, "measure with the length heuristic")

	return cmd
}
