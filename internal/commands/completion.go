package commands

import (
	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for plantview.

To load completions:

Bash:
  $ source <(plantview completion bash)

Zsh:
  $ plantview completion zsh > "${fpath[1]}/_plantview"

Fish:
  $ plantview completion fish | source

PowerShell:
  PS> plantview completion powershell | Out-String | Invoke-Expression
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return cmd.Root().GenBashCompletion(out)
		case "zsh":
			return cmd.Root().GenZshCompletion(out)
		case "fish":
			return cmd.Root().GenFishCompletion(out, true)
		default:
			return cmd.Root().GenPowerShellCompletionWithDesc(out)
		}
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
