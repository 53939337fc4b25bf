package chore

import (
	"os"

	"github.com/goyek/goyek/v3"
)

// WithPath runs fn with dir prepended to the process-wide PATH variable,
// restoring the original value before returning. The restore is deferred,
// so it also runs when fn fails the surrounding goyek task (Fatal unwinds
// via runtime.Goexit, which executes deferred calls).
//
// PATH is a process-global resource: environment-scoped invocations must
// not run concurrently.
func WithPath(dir string, fn func() error) error {
	orig, ok := os.LookupEnv("PATH")
	defer func() {
		if ok {
			os.Setenv("PATH", orig)
		} else {
			os.Unsetenv("PATH")
		}
	}()
	os.Setenv("PATH", PrependPath(orig, dir))
	return fn()
}

// PrependPath returns the PATH value with dir prepended.
func PrependPath(path, dir string) string {
	if path == "" {
		return dir
	}
	return dir + string(os.PathListSeparator) + path
}

// ForVersions wraps body so it runs once per Python version, with the
// version's virtualenv bin directory resolving tools for the duration of
// each run. With no versions, the returned action invokes the body exactly
// once with a zero Python and without touching the search path.
//
// Versions run serially, in the given order. A body that fails the task
// aborts the remaining versions. Resolution failures are fatal.
func ForVersions(body func(*goyek.A, Python), versions ...string) func(*goyek.A) {
	if len(versions) == 0 {
		return func(a *goyek.A) { body(a, Python{}) }
	}
	return func(a *goyek.A) {
		for _, version := range versions {
			venv, err := VenvDir(version)
			if err != nil {
				a.Fatal(err)
			}
			py := Python{Version: version, Venv: venv}
			_ = WithPath(py.Bin(), func() error {
				body(a, py)
				return nil
			})
			if a.Failed() {
				return
			}
		}
	}
}

// Sequence composes actions into a single action that runs them in order,
// stopping at the first one that fails the task. It is used to attach
// follow-up work to a task body, e.g. combining coverage data after tests.
func Sequence(actions ...func(*goyek.A)) func(*goyek.A) {
	return func(a *goyek.A) {
		for _, action := range actions {
			action(a)
			if a.Failed() {
				return
			}
		}
	}
}
