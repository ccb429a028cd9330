package control

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeScript drops an executable shell script into dir.
func writeScript(t *testing.T, dir, name, body string) {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755))
}

func TestRunnerRunFromBinaryDir(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "fake-syslog-ng", "echo out\necho err >&2\n")

	r := NewRunner(Settings{BinaryDir: dir}, nil)

	original := os.Getenv("PATH")

	res, err := r.Run(context.Background(), "fake-syslog-ng")
	require.NoError(t, err)

	assert.Equal(t, 0, res.ExitCode)
	assert.Equal(t, "out", res.Stdout)
	assert.Equal(t, "err", res.Stderr)

	// The search path extension is scoped to the call.
	assert.Equal(t, original, os.Getenv("PATH"))
}

func TestRunnerRunExitCode(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "fake-syslog-ng", "exit 3\n")

	r := NewRunner(Settings{BinaryDir: dir}, nil)

	res, err := r.Run(context.Background(), "fake-syslog-ng")
	require.NoError(t, err)
	assert.Equal(t, 3, res.ExitCode)
}

func TestRunnerRunArgs(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "fake-syslog-ng", `echo "$@"`+"\n")

	r := NewRunner(Settings{BinaryDir: dir}, nil)

	res, err := r.Run(context.Background(), "fake-syslog-ng", "--syntax-only", "--cfgfile=/tmp/x.conf")
	require.NoError(t, err)
	assert.Equal(t, "--syntax-only --cfgfile=/tmp/x.conf", res.Stdout)
}

func TestRunnerMissingBinary(t *testing.T) {
	r := NewRunner(Settings{BinaryDir: t.TempDir()}, nil)

	original := os.Getenv("PATH")

	_, err := r.Run(context.Background(), "definitely-not-a-binary-xyz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not in the PATH")

	// PATH restored even when resolution fails.
	assert.Equal(t, original, os.Getenv("PATH"))
}

func TestServiceConfigTest(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "syslog-ng", `echo "$@"`+"\n")

	s := NewService(Settings{BinaryDir: dir, ConfigFile: "/tmp/test.conf"}, nil)

	res := s.ConfigTest(context.Background())
	assert.Equal(t, 0, res.ExitCode)
	assert.Equal(t, "--syntax-only --cfgfile=/tmp/test.conf", res.Stdout)
}

func TestServiceVersionAndModules(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "syslog-ng",
		"echo 'syslog-ng 3.6.0alpha0'\necho 'Available-Modules: affile,afsocket'\n")

	s := NewService(Settings{BinaryDir: dir}, nil)

	version := s.Version(context.Background())
	assert.Equal(t, 0, version.ExitCode)
	assert.Equal(t, "3.6.0alpha0", version.Stdout)

	modules := s.Modules(context.Background())
	assert.Equal(t, 0, modules.ExitCode)
	assert.Equal(t, "affile,afsocket", modules.Stdout)
}

func TestServiceMissingBinaryIsResultRecord(t *testing.T) {
	// Pin the PATH so a host-installed syslog-ng cannot satisfy the
	// lookup.
	t.Setenv("PATH", t.TempDir())

	s := NewService(Settings{BinaryDir: t.TempDir()}, nil)

	res := s.Version(context.Background())
	assert.Equal(t, -1, res.ExitCode)
	assert.Contains(t, res.Stderr, "not in the PATH")
}

func TestServiceReload(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "syslog-ng-ctl", `echo "$1"`+"\n")

	s := NewService(Settings{BinaryDir: dir}, nil)

	res := s.Reload(context.Background())
	assert.Equal(t, 0, res.ExitCode)
	assert.Equal(t, "reload", res.Stdout)
}
