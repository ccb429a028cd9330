// Package control invokes the syslog-ng and syslog-ng-ctl binaries
// and scrapes their output.
//
// The binaries may live outside the PATH when syslog-ng was installed
// from source; callers name that directory in Settings and the Runner
// prepends it to the search path for the duration of one invocation,
// restoring the original PATH afterwards even on failure.
//
// Collaborator failures are reported as Result records (exit code plus
// captured streams), matching how callers consume them; they are never
// turned into compiler errors.
package control
