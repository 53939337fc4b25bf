package tasks

import (
	"bytes"

	"github.com/goyek/goyek/v3"

	"github.com/matteau/chore"
)

func checkQualityAction(cfg chore.Config) func(*goyek.A) {
	return func(a *goyek.A) {
		args := append([]string{"--config=config/flake8.ini"}, cfg.Sources...)
		chore.Run(a, "Checking code quality", "flake8", args...)
	}
}

func checkTypesBody(cfg chore.Config) func(*goyek.A, chore.Python) {
	return func(a *goyek.A, py chore.Python) {
		args := append([]string{"--config-file", "config/mypy.ini"}, cfg.Sources...)
		chore.Run(a, "Type-checking ("+py.Version+")", "mypy", args...)
	}
}

func checkDocsAction(a *goyek.A) {
	chore.Run(a, "Building documentation", "mkdocs", "build", "-s")
}

// checkDepsAction exports the locked dependencies and feeds them to the
// vulnerability scanner on stdin.
func checkDepsAction(a *goyek.A) {
	export := chore.Command(a.Context(), "poetry", "export", "-f", "requirements.txt", "--without-hashes")
	export.Stdout = nil
	reqs, err := export.Output()
	if err != nil {
		a.Errorf("poetry export: %v", err)
		return
	}
	scan := chore.Command(a.Context(), "safety", "check", "--stdin", "--full-report")
	scan.Stdin = bytes.NewReader(reqs)
	chore.RunCmd(a, "Checking dependencies", scan)
}
