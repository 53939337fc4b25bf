// Package tasks defines the development tasks exposed by the chore CLI.
// New registers them with goyek based on the provided configuration.
package tasks

import (
	"flag"

	"github.com/goyek/goyek/v3"

	"github.com/matteau/chore"
)

// Task parameters, parsed from the command line by boot.Main.
var (
	docsHost = flag.String("host", "", "docs-serve: host to bind (default from config)")
	docsPort = flag.Int("port", 0, "docs-serve: port to bind (default from config)")

	testMatch = flag.String("match", "", "test: only run tests matching this expression")

	releaseVersion = flag.String("version", "", "release: version to release (required)")
)

// Tasks holds all registered tasks.
type Tasks struct {
	// Format runs the formatting tools over the source paths.
	Format *goyek.DefinedTask

	// The individual checks, and Check which runs all of them.
	CheckQuality *goyek.DefinedTask
	CheckTypes   *goyek.DefinedTask
	CheckDocs    *goyek.DefinedTask
	CheckDeps    *goyek.DefinedTask
	Check        *goyek.DefinedTask

	// Clean deletes temporary files; Setup installs the virtualenvs.
	Clean *goyek.DefinedTask
	Setup *goyek.DefinedTask

	// Documentation tasks. Docs, DocsServe and DocsDeploy depend on
	// DocsRegen.
	DocsRegen  *goyek.DefinedTask
	Docs       *goyek.DefinedTask
	DocsServe  *goyek.DefinedTask
	DocsDeploy *goyek.DefinedTask

	// Test runs the suite across the version matrix, then Combine.
	Test     *goyek.DefinedTask
	Combine  *goyek.DefinedTask
	Coverage *goyek.DefinedTask

	// Changelog updates CHANGELOG.md; Release publishes a new version.
	Changelog *goyek.DefinedTask
	Release   *goyek.DefinedTask
}

// New creates all tasks for the given config.
//
// Dependency structure: check declares the four checks as ordered deps,
// the docs tasks declare docs-regen as a dep, and test runs combine after
// its body via chore.Sequence.
func New(cfg chore.Config) *Tasks {
	cfg = cfg.WithDefaults()
	t := &Tasks{}

	t.Format = goyek.Define(goyek.Task{
		Name:   "format",
		Usage:  "run formatting tools on the code",
		Action: formatAction(cfg),
	})

	t.CheckQuality = goyek.Define(goyek.Task{
		Name:   "check-quality",
		Usage:  "check the code quality",
		Action: checkQualityAction(cfg),
	})

	t.CheckTypes = goyek.Define(goyek.Task{
		Name:   "check-types",
		Usage:  "check that the code is correctly typed",
		Action: chore.ForVersions(checkTypesBody(cfg), cfg.Python.Versions...),
	})

	t.CheckDocs = goyek.Define(goyek.Task{
		Name:   "check-docs",
		Usage:  "check if the documentation builds correctly",
		Action: checkDocsAction,
	})

	t.CheckDeps = goyek.Define(goyek.Task{
		Name:   "check-deps",
		Usage:  "check for vulnerabilities in dependencies",
		Action: checkDepsAction,
	})

	t.Check = goyek.Define(goyek.Task{
		Name:  "check",
		Usage: "check it all",
		Deps:  goyek.Deps{t.CheckQuality, t.CheckTypes, t.CheckDocs, t.CheckDeps},
	})

	t.Clean = goyek.Define(goyek.Task{
		Name:   "clean",
		Usage:  "delete temporary files",
		Action: cleanAction,
	})

	t.Setup = goyek.Define(goyek.Task{
		Name:   "setup",
		Usage:  "set up the development environments (install dependencies)",
		Action: setupAction(cfg),
	})

	t.DocsRegen = goyek.Define(goyek.Task{
		Name:   "docs-regen",
		Usage:  "regenerate some documentation pages",
		Action: docsRegenAction,
	})

	t.Docs = goyek.Define(goyek.Task{
		Name:   "docs",
		Usage:  "build the documentation locally",
		Deps:   goyek.Deps{t.DocsRegen},
		Action: docsAction,
	})

	t.DocsServe = goyek.Define(goyek.Task{
		Name:   "docs-serve",
		Usage:  "serve the documentation (localhost:8000)",
		Deps:   goyek.Deps{t.DocsRegen},
		Action: docsServeAction(cfg),
	})

	t.DocsDeploy = goyek.Define(goyek.Task{
		Name:   "docs-deploy",
		Usage:  "deploy the documentation to GitHub pages",
		Deps:   goyek.Deps{t.DocsRegen},
		Action: docsDeployAction,
	})

	t.Combine = goyek.Define(goyek.Task{
		Name:   "combine",
		Usage:  "combine coverage data from multiple runs",
		Action: combineAction,
	})

	t.Test = goyek.Define(goyek.Task{
		Name:  "test",
		Usage: "run the test suite",
		Action: chore.Sequence(
			chore.ForVersions(testBody, cfg.Python.Versions...),
			combineAction,
		),
	})

	t.Coverage = goyek.Define(goyek.Task{
		Name:   "coverage",
		Usage:  "report coverage as text and HTML",
		Action: coverageAction,
	})

	t.Changelog = goyek.Define(goyek.Task{
		Name:   "changelog",
		Usage:  "update the changelog in-place with latest commits",
		Action: changelogAction,
	})

	t.Release = goyek.Define(goyek.Task{
		Name:   "release",
		Usage:  "release a new Python package (-version required)",
		Action: releaseAction,
	})

	return t
}
