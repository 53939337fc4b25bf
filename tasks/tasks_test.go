package tasks_test

import (
	"flag"
	"testing"

	"github.com/goyek/goyek/v3"

	"github.com/matteau/chore"
	"github.com/matteau/chore/tasks"
)

// undefineTasks cleans up all tasks registered by tasks.New().
// This is necessary because goyek uses a global registry.
func undefineTasks(t *tasks.Tasks) {
	for _, task := range []*goyek.DefinedTask{
		t.Format,
		t.CheckQuality, t.CheckTypes, t.CheckDocs, t.CheckDeps, t.Check,
		t.Clean, t.Setup,
		t.DocsRegen, t.Docs, t.DocsServe, t.DocsDeploy,
		t.Test, t.Combine, t.Coverage,
		t.Changelog, t.Release,
	} {
		if task != nil {
			goyek.Undefine(task)
		}
	}
}

func TestNew_DefinesAllTasks(t *testing.T) {
	result := tasks.New(chore.Config{})
	defer undefineTasks(result)

	want := map[string]*goyek.DefinedTask{
		"format":        result.Format,
		"check-quality": result.CheckQuality,
		"check-types":   result.CheckTypes,
		"check-docs":    result.CheckDocs,
		"check-deps":    result.CheckDeps,
		"check":         result.Check,
		"clean":         result.Clean,
		"setup":         result.Setup,
		"docs-regen":    result.DocsRegen,
		"docs":          result.Docs,
		"docs-serve":    result.DocsServe,
		"docs-deploy":   result.DocsDeploy,
		"test":          result.Test,
		"combine":       result.Combine,
		"coverage":      result.Coverage,
		"changelog":     result.Changelog,
		"release":       result.Release,
	}
	for name, task := range want {
		if task == nil {
			t.Errorf("task %q not defined", name)
			continue
		}
		if task.Name() != name {
			t.Errorf("task registered as %q, want %q", task.Name(), name)
		}
	}
}

func TestNew_CheckDependencyOrder(t *testing.T) {
	result := tasks.New(chore.Config{})
	defer undefineTasks(result)

	deps := result.Check.Deps()
	want := []string{"check-quality", "check-types", "check-docs", "check-deps"}
	if len(deps) != len(want) {
		t.Fatalf("check has %d deps, want %d", len(deps), len(want))
	}
	for i, dep := range deps {
		if dep.Name() != want[i] {
			t.Errorf("check dep %d = %q, want %q", i, dep.Name(), want[i])
		}
	}
}

func TestNew_DocsTasksDependOnRegen(t *testing.T) {
	result := tasks.New(chore.Config{})
	defer undefineTasks(result)

	for _, task := range []*goyek.DefinedTask{result.Docs, result.DocsServe, result.DocsDeploy} {
		deps := task.Deps()
		found := false
		for _, dep := range deps {
			if dep.Name() == "docs-regen" {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("%q should depend on docs-regen, deps: %v", task.Name(), deps)
		}
	}
}

func TestNew_TestHasNoRegisteredDeps(t *testing.T) {
	// combine runs as a post action inside the test task body, not as a
	// goyek dep (deps run before the body, not after).
	result := tasks.New(chore.Config{})
	defer undefineTasks(result)

	if deps := result.Test.Deps(); len(deps) != 0 {
		t.Errorf("test should have no deps, got %v", deps)
	}
}

func TestFlagsRegistered(t *testing.T) {
	for _, name := range []string{"host", "port", "match", "version"} {
		if flag.Lookup(name) == nil {
			t.Errorf("flag -%s not registered", name)
		}
	}
}
