package chore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Python identifies the interpreter environment active for a single task
// invocation. The zero value means the ambient environment: no virtualenv
// was selected and the search path is left untouched.
type Python struct {
	// Version is the interpreter version label, e.g. "3.10".
	Version string
	// Venv is the virtualenv root directory for that version.
	Venv string
}

// Bin returns the directory holding the environment's executables, or ""
// for the ambient environment.
func (p Python) Bin() string {
	if p.Venv == "" {
		return ""
	}
	return filepath.Join(p.Venv, "bin")
}

// ResolveVenv derives the virtualenv path for a version from the currently
// active virtualenv path. Poetry names sibling venvs of one project with a
// trailing -py<version> suffix, so the current path's suffix is swapped
// out. A current path already ending in the requested suffix is returned
// unchanged.
func ResolveVenv(current, version string) (string, error) {
	suffix := "py" + version
	if strings.HasSuffix(current, suffix) {
		return current, nil
	}
	i := strings.LastIndex(current, "-")
	if i < 0 {
		return "", fmt.Errorf("cannot derive a %s virtualenv from %q: no version suffix to replace", suffix, current)
	}
	return current[:i] + "-" + suffix, nil
}

// VenvDir returns the virtualenv directory for the given Python version,
// derived from the VIRTUAL_ENV variable. A missing VIRTUAL_ENV is a
// configuration error the runner does not recover from.
func VenvDir(version string) (string, error) {
	current, ok := os.LookupEnv("VIRTUAL_ENV")
	if !ok || current == "" {
		return "", fmt.Errorf("VIRTUAL_ENV is not set: activate the project virtualenv first")
	}
	return ResolveVenv(current, version)
}
