// Package launch orchestrates the build-and-start pipeline for the daemon.
//
// A launch is a linear sequence: enter the workspace root, format the
// source tree, produce a release build, compose the daemon's command line
// and environment, and replace the launcher process with the daemon. Each
// step is a precondition for the next, so the first failure aborts the
// whole run. The launcher performs no supervision: once the daemon is
// running it owns the terminal, the signals, and its own shutdown.
//
// Example usage:
//
//	err := launch.Run(ctx, launch.Options{
//	    Network: "testnet",
//	    Extra:   []string{"--electrum-rpc-addr", "127.0.0.1:60001"},
//	})
//	if err != nil {
//	    return err
//	}
package launch
