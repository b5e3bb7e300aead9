package toolchain

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// Default cargo binary when the launcher config does not override it.
const DefaultCargoBin = "cargo"

// Drives the Rust toolchain that builds the daemon.
type Cargo struct {
	Bin    string // Cargo binary. Empty uses [DefaultCargoBin].
	Dir    string // Workspace root the commands run in.
	Runner Runner // Command runner. Empty uses [Exec].
}

// Normalizes source formatting across the workspace.
//
// A build-hygiene step with no effect on the daemon's runtime behavior; it
// rewrites source files in place.
func (c *Cargo) Fmt(ctx context.Context) error {
	slog.Info("formatting source tree")

	if err := c.run(ctx, "fmt", "--all"); err != nil {
		return fmt.Errorf("%w: %w", ErrFormat, err)
	}
	return nil
}

// Produces a release-optimized build of the full workspace.
//
// Optional features are enabled as a comma-separated list. This blocks until
// the build completes; a cold build can take several minutes.
func (c *Cargo) Build(ctx context.Context, features []string) error {
	args := []string{"build", "--all", "--release"}
	if len(features) > 0 {
		args = append(args, "--features", strings.Join(features, ","))
	}

	slog.Info("building release artifact", "features", features)

	if err := c.run(ctx, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrBuild, err)
	}
	return nil
}

// Runs a cargo subcommand through the configured runner.
func (c *Cargo) run(ctx context.Context, args ...string) error {
	bin := c.Bin
	if bin == "" {
		bin = DefaultCargoBin
	}

	runner := c.Runner
	if runner == nil {
		runner = Exec{}
	}

	slog.Debug("run", "bin", bin, "args", args, "dir", c.Dir)
	return runner.Run(ctx, c.Dir, bin, args...)
}
