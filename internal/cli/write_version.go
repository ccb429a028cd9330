package cli

import (
	"github.com/spf13/cobra"
)

// newWriteVersionCommand creates the write-version command.
func newWriteVersionCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "write-version VERSION",
		Short: "Start a fresh configuration file with an @version line",
		Long: `Write-version removes any previous configuration file, then creates
a new one holding a generated header and the given @version line.
Compiled snippets are appended after it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return flags.writer().WriteVersion(args[0])
		},
	}
}
