// Command chore is the development task runner for the project.
//
// Usage:
//
//	chore -h            list available tasks and flags
//	chore               run all checks (the default task)
//	chore test          run the test suite across the Python matrix
//	chore release -version 1.2.3
package main

import (
	"fmt"
	"os"

	"github.com/goyek/goyek/v3"
	"github.com/goyek/x/boot"

	"github.com/matteau/chore"
	"github.com/matteau/chore/tasks"
)

func main() {
	cfg, err := chore.LoadConfig(chore.ConfigFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "chore:", err)
		os.Exit(1)
	}
	t := tasks.New(cfg)
	goyek.SetDefault(t.Check)
	boot.Main()
}
