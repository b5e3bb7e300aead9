package toolchain

import (
	"context"
	"os"
	"os/exec"
)

// Starts host commands and waits for them to finish.
//
// The build pipeline talks to the toolchain through this interface so tests
// can substitute a fake and assert on the issued commands.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) error
}

// Runs commands with stdio inherited from the launcher.
//
// Inheriting the streams hands the tool's own diagnostics to the operator
// unmodified; the launcher adds no wrapping or summarization of its own.
type Exec struct{}

// Runs the command in the given directory and blocks until it exits.
//
// A cancelled context kills the command. The child inherits the launcher's
// environment.
func (Exec) Run(ctx context.Context, dir, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
