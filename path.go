// Package chore provides the building blocks for the chore task runner:
// virtualenv resolution, search-path scoping, command execution and
// project configuration. The task definitions live in the tasks package.
package chore

import (
	"os"
	"path/filepath"
	"sync"
)

var (
	gitRootOnce sync.Once
	gitRoot     string
)

// GitRoot returns the root directory of the git repository.
func GitRoot() string {
	gitRootOnce.Do(func() {
		var err error
		gitRoot, err = findGitRoot()
		if err != nil {
			panic("chore: unable to find git root: " + err.Error())
		}
	})
	return gitRoot
}

func findGitRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// FromGitRoot returns a path relative to the git root.
func FromGitRoot(elem ...string) string {
	return filepath.Join(append([]string{GitRoot()}, elem...)...)
}
