package chore

import (
	"context"
	"os"
	"os/exec"
	"sync"
	"time"

	"golang.org/x/term"
)

// WaitDelay is the grace period given to child processes to handle
// termination signals before being force-killed.
const WaitDelay = 5 * time.Second

var (
	colorEnvOnce sync.Once
	colorEnvVars []string // extra env vars to force colors
)

// colorForceEnvVars are the environment variables set to force color output.
var colorForceEnvVars = []string{
	"FORCE_COLOR=1",       // Node.js, chalk, many modern tools
	"CLICOLOR_FORCE=1",    // BSD/macOS convention
	"COLORTERM=truecolor", // Indicates color support
}

// computeColorEnv determines which color env vars to use.
// isTTY: whether stdout is a terminal
// noColorSet: whether NO_COLOR env var is set.
func computeColorEnv(isTTY, noColorSet bool) []string {
	// Respect NO_COLOR convention (https://no-color.org/).
	if noColorSet {
		return nil
	}
	if !isTTY {
		return nil
	}
	return colorForceEnvVars
}

// initColorEnv detects if stdout is a TTY and prepares env vars to force
// colors. Called once on first Command() call.
func initColorEnv() {
	_, noColor := os.LookupEnv("NO_COLOR")
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	colorEnvVars = computeColorEnv(isTTY, noColor)
}

// Command creates an exec.Cmd with stdout/stderr connected to the process
// streams and graceful shutdown configured: when the context is cancelled
// the command receives SIGINT first, then SIGKILL after WaitDelay.
//
// Tool resolution follows the process search path, so commands created
// inside a ForVersions body resolve from the active virtualenv.
//
// To capture output instead (e.g. to feed another command), reset
// cmd.Stdout to nil and use cmd.Output().
func Command(ctx context.Context, name string, args ...string) *exec.Cmd {
	colorEnvOnce.Do(initColorEnv)
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = append(os.Environ(), colorEnvVars...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	setGracefulShutdown(cmd)
	return cmd
}

// setGracefulShutdown configures a command for graceful shutdown.
func setGracefulShutdown(cmd *exec.Cmd) {
	cmd.Cancel = func() error {
		return cmd.Process.Signal(os.Interrupt)
	}
	cmd.WaitDelay = WaitDelay
}
