package root

import (
	"os"

	"github.com/flarebyte/hello/internal/greeting"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for hello.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hello",
		Short: "Print a greeting",
		// Every token, flag-shaped or not, is ignored.
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			// os.Stdout is resolved per run so a swapped stream is honored.
			return greeting.Write(os.Stdout)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	return cmd
}

// Execute runs the root command. The arguments are discarded: a non-nil empty
// slice keeps cobra from falling back to os.Args and from routing to its
// hidden __complete command.
func Execute(_ []string) error {
	cmd := NewRootCmd()
	cmd.SetArgs([]string{})
	return cmd.Execute()
}
