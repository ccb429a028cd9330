package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with the given args and returns the
// captured stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCommand("test")

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func writeDocument(t *testing.T, yaml string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "doc.yml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	return path
}

func TestCompileCommandPrints(t *testing.T) {
	path := writeDocument(t, `
source:
  - file:
      - /var/log/messages
`)

	out, err := execute(t, "compile", "--id", "s1", path)
	require.NoError(t, err)

	expected := "source s1 {\n" +
		"   file(\n" +
		"         \"/var/log/messages\"\n" +
		"   );\n" +
		"};\n"
	assert.Equal(t, expected, out)
}

func TestCompileCommandWrite(t *testing.T) {
	doc := writeDocument(t, `
source:
  - file:
      - /var/log/messages
`)
	configFile := filepath.Join(t.TempDir(), "syslog-ng.conf")

	out, err := execute(t, "compile", "--id", "s1", "--write", "--config-file", configFile, doc)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(configFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "source s1 {")
	assert.True(t, bytes.HasSuffix(data, []byte("};\n\n")))
}

func TestCompileCommandMalformedDocument(t *testing.T) {
	path := writeDocument(t, `
source:
  - file:
      - freq: 1.5
`)

	_, err := execute(t, "compile", "--id", "s1", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed configuration tree")
}

func TestCompileCommandRequiresID(t *testing.T) {
	path := writeDocument(t, "source:\n  - id: s1\n")

	_, err := execute(t, "compile", path)
	assert.Error(t, err)
}

func TestWriteVersionCommand(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "syslog-ng.conf")

	_, err := execute(t, "write-version", "--config-file", configFile, "3.6")
	require.NoError(t, err)

	data, err := os.ReadFile(configFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "@version: 3.6")
}

func TestCheckCommand(t *testing.T) {
	dir := t.TempDir()
	script := "#!/bin/sh\necho checked\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "syslog-ng"), []byte(script), 0o755))

	out, err := execute(t, "check", "--binary-dir", dir, "--config-file", "/tmp/x.conf")
	require.NoError(t, err)
	assert.Contains(t, out, "checked")
}
