package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"syslogng-gen/internal/control"
)

// newVersionCommand creates the version command reporting the
// installed syslog-ng version.
func newVersionCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version of the installed syslog-ng",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return reportResult(cmd, flags.service().Version(cmd.Context()))
		},
	}
}

// newModulesCommand creates the modules command.
func newModulesCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "modules",
		Short: "List the modules available to the installed syslog-ng",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return reportResult(cmd, flags.service().Modules(cmd.Context()))
		},
	}
}

// newStatsCommand creates the stats command.
func newStatsCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show statistics from the running syslog-ng instance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return reportResult(cmd, flags.service().Stats(cmd.Context()))
		},
	}
}

// printResult writes the captured streams of a Result to the command
// outputs.
func printResult(cmd *cobra.Command, res control.Result) {
	if res.Stdout != "" {
		cmd.Println(res.Stdout)
	}

	if res.Stderr != "" {
		cmd.PrintErrln(res.Stderr)
	}
}

// reportResult prints the Result and converts a non-zero exit code
// into a command error.
func reportResult(cmd *cobra.Command, res control.Result) error {
	printResult(cmd, res)

	if res.ExitCode != 0 {
		return fmt.Errorf("command failed with exit code %d", res.ExitCode)
	}

	return nil
}
