package chore

import (
	"os/exec"

	"github.com/fatih/color"
	"github.com/goyek/goyek/v3"
)

var (
	titleColor = color.New(color.FgCyan, color.Bold)
	failColor  = color.New(color.FgRed)
)

// Title prints a styled step title, announcing the command about to run.
func Title(title string) {
	titleColor.Println("> " + title)
}

// Run prints a step title, executes the command and reports a non-zero
// exit as a task failure. It returns false when the command failed, so
// callers can stop a multi-step body early.
func Run(a *goyek.A, title, name string, args ...string) bool {
	a.Helper()
	return RunCmd(a, title, Command(a.Context(), name, args...))
}

// RunCmd is Run for an already prepared command, for callers that need to
// wire stdin or a working directory first.
func RunCmd(a *goyek.A, title string, cmd *exec.Cmd) bool {
	a.Helper()
	Title(title)
	if err := cmd.Run(); err != nil {
		failColor.Println("✗ " + title)
		a.Errorf("%s: %v", title, err)
		return false
	}
	return true
}
