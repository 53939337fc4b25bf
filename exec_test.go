package chore

import (
	"context"
	"testing"
)

func TestComputeColorEnv(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		isTTY      bool
		noColorSet bool
		wantVars   bool
	}{
		{name: "tty forces colors", isTTY: true, wantVars: true},
		{name: "no tty", isTTY: false, wantVars: false},
		{name: "NO_COLOR wins over tty", isTTY: true, noColorSet: true, wantVars: false},
		{name: "NO_COLOR without tty", isTTY: false, noColorSet: true, wantVars: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := computeColorEnv(tt.isTTY, tt.noColorSet)
			if tt.wantVars && len(got) == 0 {
				t.Error("expected color env vars, got none")
			}
			if !tt.wantVars && len(got) != 0 {
				t.Errorf("expected no color env vars, got %v", got)
			}
		})
	}
}

func TestCommand(t *testing.T) {
	t.Parallel()

	cmd := Command(context.Background(), "true")
	if cmd.WaitDelay != WaitDelay {
		t.Errorf("WaitDelay = %v, want %v", cmd.WaitDelay, WaitDelay)
	}
	if cmd.Cancel == nil {
		t.Error("Cancel should be configured for graceful shutdown")
	}
	if cmd.Stdout == nil || cmd.Stderr == nil {
		t.Error("stdout/stderr should be connected by default")
	}
}
