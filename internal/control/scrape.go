package control

import (
	"errors"
	"fmt"
	"strings"
)

const modulesLinePrefix = "Available-Modules"

// parseVersion extracts the version token from syslog-ng -V output.
// The format of the first line is:
//
//	syslog-ng 3.6.0alpha0
func parseVersion(out string) (string, error) {
	line, _, _ := strings.Cut(out, "\n")

	fields := strings.Fields(line)
	if len(fields) < 2 {
		return "", fmt.Errorf("unexpected version line %q", line)
	}

	return fields[1], nil
}

// parseModules extracts the comma-separated module list from the
// Available-Modules line of syslog-ng -V output.
func parseModules(out string) (string, error) {
	for _, line := range strings.Split(out, "\n") {
		if !strings.HasPrefix(line, modulesLinePrefix) {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			return "", fmt.Errorf("unexpected modules line %q", line)
		}

		return fields[1], nil
	}

	return "", errors.New("unable to find the modules")
}
