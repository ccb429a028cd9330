// Package main provides the CLI entrypoint for syslogng-gen.
//
// syslogng-gen manages syslog-ng instances which were not installed
// via a package manager:
//   - Compiles YAML documents into native syslog-ng configuration
//   - Appends compiled snippets to the configuration file
//   - Issues single check/start/stop/reload commands against the
//     syslog-ng and syslog-ng-ctl binaries
package main

import (
	"os"

	"syslogng-gen/internal/cli"
)

// version is injected via ldflags at build time.
var version = "dev"

func main() {
	cmd := cli.NewRootCommand(version)

	err := cmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
