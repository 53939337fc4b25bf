package tasks

import (
	"github.com/goyek/goyek/v3"
	"github.com/goyek/x/cmd"

	"github.com/matteau/chore"
)

func testBody(a *goyek.A, py chore.Python) {
	args := []string{"run", "--rcfile=config/coverage.ini", "-m", "pytest", "-c", "config/pytest.ini"}
	if *testMatch != "" {
		args = append(args, "-k", *testMatch)
	}
	chore.Run(a, "Running tests ("+py.Version+")", "coverage", args...)
}

func combineAction(a *goyek.A) {
	chore.Run(a, "Combining coverage data", "coverage", "combine", "--rcfile=config/coverage.ini")
}

func coverageAction(a *goyek.A) {
	if !cmd.Exec(a, "coverage report --rcfile=config/coverage.ini") {
		return
	}
	cmd.Exec(a, "coverage html --rcfile=config/coverage.ini")
}
