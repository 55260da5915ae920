package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for drift.

To load completions:

Bash:
  $ source <(drift completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ drift completion bash > /etc/bash_completion.d/drift
  # macOS:
  $ drift completion bash > $(brew --prefix)/etc/bash_completion.d/drift

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ drift completion zsh > "${fpath[1]}/_drift"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ drift completion fish | source

  # To load completions for each session, execute once:
  $ drift completion fish > ~/.config/fish/completions/drift.fish

PowerShell:
  PS> drift completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> drift completion powershell > drift.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}

	return cmd
}
