package cli

import (
	"github.com/spf13/cobra"

	"syslogng-gen/internal/control"
)

// newStartCommand creates the start command.
func newStartCommand(flags *globalFlags) *cobra.Command {
	var opts control.StartOptions

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start syslog-ng with the given parameters",
		Long: `Start launches syslog-ng directly. Prefer the system service
manager when one is available; this command exists for instances
installed from source.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return reportResult(cmd, flags.service().Start(cmd.Context(), opts))
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.User, "user", "", "run as the given user")
	f.StringVar(&opts.Group, "group", "", "run as the given group")
	f.StringVar(&opts.Chroot, "chroot", "", "chroot to the given directory")
	f.StringVar(&opts.Caps, "caps", "", "run with the given capability set")
	f.BoolVar(&opts.NoCaps, "no-caps", false, "run without capabilities")
	f.StringVar(&opts.Pidfile, "pidfile", "", "write the pid to the given file")
	f.BoolVar(&opts.EnableCore, "enable-core", false, "enable core dumps")
	f.IntVar(&opts.FDLimit, "fd-limit", 0, "file descriptor limit")
	f.BoolVar(&opts.Verbose, "verbose", false, "verbose daemon output")
	f.BoolVar(&opts.Debug, "debug", false, "debug daemon output")
	f.BoolVar(&opts.Trace, "trace", false, "trace daemon output")
	f.BoolVar(&opts.YYDebug, "yydebug", false, "parser debug output")
	f.StringVar(&opts.PersistFile, "persist-file", "", "persist file path")
	f.StringVar(&opts.Control, "control", "", "control socket path")
	f.IntVar(&opts.WorkerThreads, "worker-threads", 0, "number of worker threads")

	return cmd
}

// newStopCommand creates the stop command.
func newStopCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Kill the running syslog-ng instance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return reportResult(cmd, flags.service().Stop(cmd.Context()))
		},
	}
}

// newReloadCommand creates the reload command.
func newReloadCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "reload",
		Short: "Reload the running syslog-ng instance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return reportResult(cmd, flags.service().Reload(cmd.Context()))
		},
	}
}
