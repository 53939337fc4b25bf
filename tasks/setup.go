package tasks

import (
	"github.com/goyek/goyek/v3"

	"github.com/matteau/chore"
)

// setupAction creates a virtualenv per configured version and installs
// the project into it. The main version gets the full development
// install; the others only need the test extras.
func setupAction(cfg chore.Config) func(*goyek.A) {
	return func(a *goyek.A) {
		for _, version := range cfg.Python.Versions {
			if !chore.Run(a, "Setting up Python "+version+" environment",
				"poetry", "env", "use", version) {
				return
			}
			args := []string{"install"}
			if version != cfg.Python.Main {
				args = append(args, "--no-dev", "--extras", "tests")
			}
			// Install failures are tolerated: not every interpreter is
			// available on every machine.
			if err := chore.Command(a.Context(), "poetry", args...).Run(); err != nil {
				a.Logf("poetry install (%s): %v", version, err)
			}
		}
		if err := chore.Command(a.Context(), "poetry", "env", "use", "system").Run(); err != nil {
			a.Logf("poetry env use system: %v", err)
		}
	}
}
