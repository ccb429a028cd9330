// Package cli wires the cobra command tree for syslogng-gen.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"syslogng-gen/internal/conf"
	"syslogng-gen/internal/control"
	"syslogng-gen/internal/logging"
)

// globalFlags holds the persistent flags shared by every command.
type globalFlags struct {
	binaryDir  string
	configFile string
	logLevel   string
	logFormat  string
}

// NewRootCommand creates the root command with all subcommands
// attached.
func NewRootCommand(version string) *cobra.Command {
	flags := &globalFlags{}

	cmd := &cobra.Command{
		Use:   "syslogng-gen",
		Short: "Generate and manage syslog-ng configuration from YAML",
		Long: `syslogng-gen manages syslog-ng instances which were not installed
via a package manager. It compiles YAML documents into native syslog-ng
configuration, appends them to the configuration file, and issues
single check/start/stop/reload commands against the binaries.

When the syslog-ng and syslog-ng-ctl binaries live outside the PATH,
point --binary-dir at the directory that contains them.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.binaryDir, "binary-dir", "", "directory holding the syslog-ng binaries when not on the PATH")
	pf.StringVar(&flags.configFile, "config-file", conf.DefaultConfigFile, "syslog-ng configuration file")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.StringVar(&flags.logFormat, "log-format", "", "log format (text, json)")

	cmd.AddCommand(
		newCompileCommand(flags),
		newWriteVersionCommand(flags),
		newCheckCommand(flags),
		newVersionCommand(flags),
		newModulesCommand(flags),
		newStatsCommand(flags),
		newStartCommand(flags),
		newStopCommand(flags),
		newReloadCommand(flags),
	)

	return cmd
}

// logger builds the logger from flags, falling back to the
// environment.
func (f *globalFlags) logger() *slog.Logger {
	cfg := logging.FromEnv()

	if f.logLevel != "" {
		cfg.Level = f.logLevel
	}

	if f.logFormat != "" {
		cfg.Format = logging.Format(f.logFormat)
	}

	return logging.New(cfg)
}

// settings builds the collaborator settings from flags.
func (f *globalFlags) settings() control.Settings {
	return control.Settings{
		BinaryDir:  f.binaryDir,
		ConfigFile: f.configFile,
	}
}

// service builds the daemon service from flags.
func (f *globalFlags) service() *control.Service {
	return control.NewService(f.settings(), f.logger())
}

// writer builds the configuration file writer from flags.
func (f *globalFlags) writer() *conf.Writer {
	return conf.NewWriter(f.configFile, f.logger())
}
