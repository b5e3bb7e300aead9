package launch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/quarryhq/erun/internal/config"
	"github.com/quarryhq/erun/internal/paths"
	"github.com/quarryhq/erun/internal/toolchain"
)

// Controls a launch.
type Options struct {
	Network string           // Network selector forwarded to the daemon, unvalidated.
	Extra   []string         // Additional daemon arguments, forwarded in order.
	Root    string           // Workspace root override. Empty resolves from the executable path.
	Runner  toolchain.Runner // Build-tool runner. Empty uses [toolchain.Exec].
	Starter Starter          // Daemon starter. Empty uses [ExecStarter].
	Environ []string         // Base environment for the daemon. Empty uses the process environment.
}

// Runs the launch pipeline: enter the workspace, format, build, then hand
// the process over to the daemon.
//
// The steps run strictly in order and the first failure aborts the whole
// run; there are no retries and no partial continuation. On success this
// does not return: the daemon replaces the launcher.
func Run(ctx context.Context, opts Options) error {
	root := opts.Root
	if root == "" {
		var err error
		if root, err = paths.Workspace(); err != nil {
			return fmt.Errorf("%w: %w", ErrWorkspace, err)
		}
	}

	// Anchor every relative path, including the daemon's database
	// directory, regardless of where the launcher was invoked from.
	if err := os.Chdir(root); err != nil {
		return fmt.Errorf("%w: %w", ErrWorkspace, err)
	}

	slog.Debug("workspace", "root", root)

	cfg, err := config.Load(filepath.Join(root, config.FileName))
	if err != nil {
		return err
	}

	cargo := &toolchain.Cargo{Bin: cfg.Cargo, Dir: root, Runner: opts.Runner}
	if err := cargo.Fmt(ctx); err != nil {
		return err
	}
	if err := cargo.Build(ctx, cfg.Features); err != nil {
		return err
	}

	environ := opts.Environ
	if environ == nil {
		environ = os.Environ()
	}

	cmd, err := Compose(cfg.DaemonBin, opts.Network, opts.Extra, environ)
	if err != nil {
		return err
	}

	slog.Info("starting daemon", "network", opts.Network, "bin", cmd.Path)

	starter := opts.Starter
	if starter == nil {
		starter = ExecStarter{}
	}
	return starter.Start(cmd)
}
