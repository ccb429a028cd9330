package control

import (
	"context"
	"log/slog"
	"strings"
)

const (
	daemonBinary  = "syslog-ng"
	controlBinary = "syslog-ng-ctl"
)

// Service exposes the single-shot daemon operations: syntax check,
// version and module discovery, stats, start, stop and reload. It is
// not a supervisor; each call issues one command and reports its
// Result.
type Service struct {
	settings Settings
	runner   *Runner
	logger   *slog.Logger
}

// NewService creates a Service for the given settings.
func NewService(settings Settings, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}

	return &Service{
		settings: settings,
		runner:   NewRunner(settings, logger),
		logger:   logger,
	}
}

// run funnels every invocation through the Runner and folds hard
// failures (binary missing, exec refused) into the Result record.
func (s *Service) run(ctx context.Context, name string, args ...string) Result {
	res, err := s.runner.Run(ctx, name, args...)
	if err != nil {
		s.logger.Error("command failed", "binary", name, "error", err)
		return failure(err.Error())
	}

	return res
}

// ConfigTest runs a syntax check against the configured file.
func (s *Service) ConfigTest(ctx context.Context) Result {
	args := []string{"--syntax-only"}
	if s.settings.ConfigFile != "" {
		args = append(args, "--cfgfile="+s.settings.ConfigFile)
	}

	return s.run(ctx, daemonBinary, args...)
}

// Version returns the version of the installed syslog-ng in the
// Result stdout.
func (s *Service) Version(ctx context.Context) Result {
	res := s.run(ctx, daemonBinary, "-V")
	if res.ExitCode != 0 {
		return res
	}

	version, err := parseVersion(res.Stdout)
	if err != nil {
		return failure(err.Error())
	}

	return Result{Stdout: version}
}

// Modules returns the available modules of the installed syslog-ng in
// the Result stdout.
func (s *Service) Modules(ctx context.Context) Result {
	res := s.run(ctx, daemonBinary, "-V")
	if res.ExitCode != 0 {
		return res
	}

	modules, err := parseModules(res.Stdout)
	if err != nil {
		return failure(err.Error())
	}

	return Result{ExitCode: res.ExitCode, Stdout: modules}
}

// Stats returns statistics from the running syslog-ng instance.
func (s *Service) Stats(ctx context.Context) Result {
	return s.run(ctx, controlBinary, "stats")
}

// Reload asks the running instance to reload its configuration.
func (s *Service) Reload(ctx context.Context) Result {
	return s.run(ctx, controlBinary, "reload")
}

// Start launches the daemon with the given options and the configured
// configuration file.
func (s *Service) Start(ctx context.Context, opts StartOptions) Result {
	return s.run(ctx, daemonBinary, opts.Args(s.settings.ConfigFile)...)
}

// Stop kills the running daemon via pkill. The Result stdout lists
// the process ids found before the kill.
func (s *Service) Stop(ctx context.Context) Result {
	pids := s.run(ctx, "pgrep", daemonBinary)
	if pids.ExitCode != 0 || pids.Stdout == "" {
		return failure("syslog-ng is not running")
	}

	res := s.run(ctx, "pkill", daemonBinary)
	if res.ExitCode != 0 {
		return res
	}

	return Result{Stdout: strings.Join(strings.Fields(pids.Stdout), " ")}
}
