package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newCheckCommand creates the check command.
func newCheckCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Run a syntax check against the configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res := flags.service().ConfigTest(cmd.Context())

			printResult(cmd, res)

			if res.ExitCode != 0 {
				return fmt.Errorf("syntax check failed with exit code %d", res.ExitCode)
			}

			return nil
		},
	}
}
