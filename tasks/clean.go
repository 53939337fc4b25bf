package tasks

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/goyek/goyek/v3"

	"github.com/matteau/chore"
)

// cleanDirs are removed from the git root if present.
var cleanDirs = []string{
	".mypy_cache",
	".pytest_cache",
	"build",
	"dist",
	"pip-wheel-metadata",
	"site",
}

func cleanAction(a *goyek.A) {
	for _, dir := range cleanDirs {
		removeAll(a, chore.FromGitRoot(dir))
	}

	// Coverage data files, including the per-run .coverage.* files.
	matches, err := filepath.Glob(chore.FromGitRoot(".coverage*"))
	if err == nil {
		for _, m := range matches {
			removeAll(a, m)
		}
	}

	// __pycache__ directories and patch rejects, anywhere in the tree.
	err = filepath.WalkDir(chore.GitRoot(), func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			switch d.Name() {
			case ".git":
				return fs.SkipDir
			case "__pycache__":
				removeAll(a, path)
				return fs.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(d.Name(), ".rej") {
			removeAll(a, path)
		}
		return nil
	})
	if err != nil {
		a.Error(err)
	}
}

func removeAll(a *goyek.A, path string) {
	if _, err := os.Stat(path); err != nil {
		return
	}
	if err := os.RemoveAll(path); err != nil {
		a.Errorf("remove %s: %v", path, err)
		return
	}
	a.Logf("Removed %s", path)
}
