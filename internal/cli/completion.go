package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// completionShell describes one supported shell: how to install the script
// and how to generate it.
type completionShell struct {
	name    string
	install string
	gen     func(root *cobra.Command, w io.Writer, desc bool) error
}

var completionShells = []completionShell{
	{
		name:    "bash",
		install: "loracharts completion bash > /etc/bash_completion.d/loracharts",
		gen: func(root *cobra.Command, w io.Writer, desc bool) error {
			return root.GenBashCompletionV2(w, desc)
		},
	},
	{
		name:    "zsh",
		install: `loracharts completion zsh > "${fpath[1]}/_loracharts"`,
		gen: func(root *cobra.Command, w io.Writer, desc bool) error {
			if desc {
				return root.GenZshCompletion(w)
			}
			return root.GenZshCompletionNoDesc(w)
		},
	},
	{
		name:    "fish",
		install: "loracharts completion fish > ~/.config/fish/completions/loracharts.fish",
		gen: func(root *cobra.Command, w io.Writer, desc bool) error {
			return root.GenFishCompletion(w, desc)
		},
	},
	{
		name:    "powershell",
		install: "loracharts completion powershell | Out-String | Invoke-Expression",
		gen: func(root *cobra.Command, w io.Writer, desc bool) error {
			if desc {
				return root.GenPowerShellCompletionWithDesc(w)
			}
			return root.GenPowerShellCompletion(w)
		},
	},
}

func completionShellNames() []string {
	names := make([]string, len(completionShells))
	for i, s := range completionShells {
		names[i] = s.name
	}
	return names
}

func completionHelp() string {
	var b strings.Builder
	b.WriteString("Print the completion script for a shell to stdout.\n\nInstall it with:\n")
	for _, s := range completionShells {
		fmt.Fprintf(&b, "\n  %-10s  %s", s.name, s.install)
	}
	b.WriteString("\n\nStart a new shell afterwards.")
	return b.String()
}

// completionCommand creates the completion command.
func (c *CLI) completionCommand() *cobra.Command {
	var noDesc bool
	names := completionShellNames()

	cmd := &cobra.Command{
		Use:                   fmt.Sprintf("completion [%s]", strings.Join(names, "|")),
		Short:                 "Generate shell completion scripts",
		Long:                  completionHelp(),
		DisableFlagsInUseLine: true,
		ValidArgs:             names,
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, s := range completionShells {
				if s.name == args[0] {
					return s.gen(cmd.Root(), cmd.OutOrStdout(), !noDesc)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&noDesc, "no-descriptions", false, "omit completion descriptions")

	return cmd
}
