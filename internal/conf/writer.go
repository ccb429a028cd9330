// Package conf persists compiled configuration text. The file is
// treated as a single-writer append-only log; one Writer owns one
// configuration file path.
package conf

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"
)

// File permission constant.
const filePerm = 0o644

// DefaultConfigFile is used when the caller does not name one.
const DefaultConfigFile = "/etc/syslog-ng.conf"

const (
	headerPrefix = "# Generated by syslogng-gen on "
	timeLayout   = "2006-01-02 15:04:05"
)

// Writer appends configuration snippets to a single configuration
// file.
type Writer struct {
	path   string
	logger *slog.Logger

	// now is replaceable for tests.
	now func() time.Time
}

// NewWriter creates a Writer bound to the given configuration file
// path.
func NewWriter(path string, logger *slog.Logger) *Writer {
	if path == "" {
		path = DefaultConfigFile
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Writer{path: path, logger: logger, now: time.Now}
}

// Path returns the configuration file path.
func (w *Writer) Path() string {
	return w.path
}

// Append writes text to the configuration file in append mode,
// followed by the given number of line separators. The file is
// created if it does not exist.
func (w *Writer) Append(text string, newlines int) error {
	f, err := os.OpenFile(w.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, filePerm)
	if err != nil {
		return fmt.Errorf("opening config file %s: %w", w.path, err)
	}
	defer f.Close()

	_, err = f.WriteString(text + strings.Repeat("\n", newlines))
	if err != nil {
		return fmt.Errorf("writing config file %s: %w", w.path, err)
	}

	return nil
}

// WriteVersion removes any previous configuration file, then starts a
// new one with a generated header and the @version line.
func (w *Writer) WriteVersion(version string) error {
	_, err := os.Stat(w.path)
	if err == nil {
		w.logger.Debug("removing previous configuration file", "path", w.path)

		err = os.Remove(w.path)
		if err != nil {
			return fmt.Errorf("removing previous config file %s: %w", w.path, err)
		}
	}

	err = w.Append(w.header(), 1)
	if err != nil {
		return err
	}

	return w.Append("@version: "+version, 2)
}

// header formats the generated-by line prepended to fresh
// configuration files.
func (w *Writer) header() string {
	return headerPrefix + w.now().Format(timeLayout)
}
