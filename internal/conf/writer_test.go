package conf

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "syslog-ng.conf")
	w := NewWriter(path, nil)

	require.NoError(t, w.Append("source s1 {\n};", 2))
	require.NoError(t, w.Append("destination d1 {\n};", 2))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "source s1 {\n};\n\ndestination d1 {\n};\n\n", string(data))
}

func TestAppendNewlineCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "syslog-ng.conf")
	w := NewWriter(path, nil)

	require.NoError(t, w.Append("snippet", 1))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "snippet\n", string(data))
}

func TestWriteVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "syslog-ng.conf")

	w := NewWriter(path, nil)
	w.now = func() time.Time {
		return time.Date(2014, 4, 4, 20, 26, 18, 0, time.UTC)
	}

	// Pre-existing content is discarded.
	require.NoError(t, os.WriteFile(path, []byte("stale\n"), 0o644))

	require.NoError(t, w.WriteVersion("3.6"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"# Generated by syslogng-gen on 2014-04-04 20:26:18\n@version: 3.6\n\n",
		string(data))
}

func TestWriteVersionFreshFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "syslog-ng.conf")
	w := NewWriter(path, nil)

	require.NoError(t, w.WriteVersion("3.6"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Generated by syslogng-gen on ")
	assert.Contains(t, string(data), "@version: 3.6\n")
}

func TestDefaultPath(t *testing.T) {
	w := NewWriter("", nil)
	assert.Equal(t, DefaultConfigFile, w.Path())
}
