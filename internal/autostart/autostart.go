// Package autostart registers the application for automatic startup at user
// login. Each platform keeps its record in the OS-native startup facility;
// the record itself is the only state, so Manager is stateless.
package autostart

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

const (
	appName     = "Toss"
	programName = "toss"
)

// Manager manages the login-time auto-start record for the app.
//
// Enable overwrites any existing record, Disable treats an absent record as
// success, and IsEnabled reports whether a well-formed record is present.
// None of the operations retry; failures surface as ordinary errors to the
// immediate caller.
type Manager struct{}

// resolveExecPath returns the launch target for the auto-start record.
// An explicitly supplied path wins; otherwise the path of the currently
// running executable is used, falling back to a PATH lookup by program name.
func resolveExecPath(execPath string) (string, error) {
	if execPath != "" {
		return execPath, nil
	}

	if self, err := os.Executable(); err == nil {
		if resolved, err := filepath.EvalSymlinks(self); err == nil {
			return resolved, nil
		}
		return self, nil
	}

	if found, err := exec.LookPath(programName); err == nil {
		return found, nil
	}

	return "", fmt.Errorf("locate %s executable", programName)
}
