package launch

import (
	"fmt"
	"os/exec"
	"syscall"
)

// Hands control of the process to a composed daemon command.
type Starter interface {
	Start(cmd *Command) error
}

// Replaces the launcher process image with the daemon via execve.
//
// On success this never returns: the daemon takes over the launcher's PID,
// terminal, and signal disposition. An interrupt delivered afterwards goes
// straight to the daemon, which owns graceful shutdown.
type ExecStarter struct{}

// Starts the daemon in place of the launcher.
//
// The path is resolved before the exec so a missing artifact surfaces as a
// start error rather than a raw ENOENT from the kernel.
func (ExecStarter) Start(cmd *Command) error {
	path, err := exec.LookPath(cmd.Path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStart, err)
	}

	if err := syscall.Exec(path, cmd.Args, cmd.Env); err != nil {
		return fmt.Errorf("%w: %w", ErrStart, err)
	}
	return nil
}
