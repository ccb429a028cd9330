package control

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
)

// Settings names the external locations the collaborators work with.
// It is passed explicitly; there is no process-wide mutable state.
type Settings struct {
	// BinaryDir is the directory holding the syslog-ng and
	// syslog-ng-ctl binaries when they are not on the PATH, e.g.
	// /home/user/install/syslog-ng/sbin. Empty means PATH only.
	BinaryDir string

	// ConfigFile is the configuration file handed to the daemon.
	// Empty means the daemon default.
	ConfigFile string
}

// Result is the structured record of one binary invocation.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// failure builds the Result used when an invocation could not happen
// at all, mirroring a non-zero exit with the reason on stderr.
func failure(reason string) Result {
	return Result{ExitCode: -1, Stderr: reason}
}

// Runner executes binaries under the temporarily extended search
// path.
type Runner struct {
	settings Settings
	logger   *slog.Logger
}

// NewRunner creates a Runner for the given settings.
func NewRunner(settings Settings, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}

	return &Runner{settings: settings, logger: logger}
}

// Run resolves and executes name with the given arguments, capturing
// exit code, stdout and stderr. The binary directory from Settings is
// prepended to the PATH around the call and restored before Run
// returns, on every path.
func (r *Runner) Run(ctx context.Context, name string, args ...string) (Result, error) {
	restore, err := r.extendPath()
	if err != nil {
		return Result{}, err
	}
	defer restore()

	binary, err := exec.LookPath(name)
	if err != nil {
		return Result{}, fmt.Errorf("unable to execute %q: it is not in the PATH", name)
	}

	r.logger.Debug("running command", "binary", binary, "args", strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, binary, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()

	res := Result{
		Stdout: strings.TrimSpace(stdout.String()),
		Stderr: strings.TrimSpace(stderr.String()),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			return res, nil
		}

		return Result{}, fmt.Errorf("unable to run command %s: %w", name, err)
	}

	return res, nil
}

// extendPath prepends the configured binary directory to the PATH and
// returns the function that restores the original value.
func (r *Runner) extendPath() (restore func(), err error) {
	dir := r.settings.BinaryDir
	if dir == "" {
		return func() {}, nil
	}

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		r.logger.Warn("configured binary path is not a directory", "path", dir)
	}

	original := os.Getenv("PATH")

	err = os.Setenv("PATH", dir+string(os.PathListSeparator)+original)
	if err != nil {
		return nil, fmt.Errorf("extending PATH: %w", err)
	}

	return func() {
		if err := os.Setenv("PATH", original); err != nil {
			r.logger.Error("failed to restore PATH", "error", err)
		}
	}, nil
}
