package cli

import (
	"context"

	"github.com/quarryhq/erun/internal/launch"
)

// Represents the 'erun run' command, also the default command.
type RunCmd struct {
	Network string   `arg:"" help:"Target network passed to the daemon (e.g. mainnet, testnet)."`
	Args    []string `arg:"" optional:"" passthrough:"" help:"Extra arguments forwarded to the daemon verbatim."`
}

// Executes the run command.
//
// Formats and rebuilds the daemon, then replaces the launcher process with
// it. On success this never returns; the daemon keeps the terminal until
// the operator interrupts it.
func (c *RunCmd) Run(ctx context.Context) error {
	return launch.Run(ctx, launch.Options{
		Network: c.Network,
		Extra:   c.Args,
		Root:    RootCmd.Root,
	})
}
