package tasks

import (
	"github.com/goyek/goyek/v3"

	"github.com/matteau/chore"
)

func changelogAction(a *goyek.A) {
	chore.Run(a, "Updating changelog", "python", "scripts/update_changelog.py",
		"CHANGELOG.md", "<!-- insertion marker -->", `^## \[v?(?P<version>[^\]]+)`)
}

// releaseAction bumps, commits, tags, pushes, builds, publishes and
// deploys the docs. Any failing step aborts the remaining ones.
func releaseAction(a *goyek.A) {
	version := *releaseVersion
	if version == "" {
		a.Fatal("release: the -version flag is required")
	}
	steps := []struct {
		title string
		cmd   []string
	}{
		{"Bumping version in pyproject.toml", []string{"poetry", "version", version}},
		{"Staging files", []string{"git", "add", "pyproject.toml", "CHANGELOG.md", "setup.py"}},
		{"Committing changes", []string{"git", "commit", "-m", "chore: Prepare release " + version}},
		{"Tagging commit", []string{"git", "tag", version}},
		{"Pushing commits", []string{"git", "push"}},
		{"Pushing tags", []string{"git", "push", "--tags"}},
		{"Building dist/wheel", []string{"poetry", "build"}},
		{"Publishing version", []string{"poetry", "publish"}},
		{"Deploying docs", []string{"poetry", "run", "mkdocs", "gh-deploy"}},
	}
	for _, step := range steps {
		if !chore.Run(a, step.title, step.cmd[0], step.cmd[1:]...) {
			return
		}
	}
}
