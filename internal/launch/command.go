package launch

import (
	"slices"
	"strings"

	"github.com/quarryhq/erun/internal/paths"
)

const (

	// Environment variable controlling the daemon's log verbosity.
	logEnvVar = "RUST_LOG"

	// Log filter applied when the caller's environment does not set one.
	defaultLogFilter = "electrs=INFO"
)

// A fully composed daemon invocation: the executable, its argument vector
// (argv[0] included), and the environment it starts with.
type Command struct {
	Path string
	Args []string
	Env  []string
}

// Composes the daemon command line and environment.
//
// The argument vector carries the three fixed flags first; extra arguments
// follow verbatim in their original order. The environment is the given
// base with the log filter defaulted when absent. The network selector
// passes through without validation; unsupported values are the daemon's
// to reject.
func Compose(bin, network string, extra, env []string) (*Command, error) {
	daemonDir, err := paths.DaemonDir()
	if err != nil {
		return nil, err
	}

	args := []string{
		bin,
		"--network", network,
		"--db-dir", paths.DBDir,
		"--daemon-dir", daemonDir,
	}
	args = append(args, extra...)

	return &Command{Path: bin, Args: args, Env: withLogFilter(env)}, nil
}

// Returns env with the daemon log filter appended when the caller has not
// set one. A caller-provided value passes through untouched.
func withLogFilter(env []string) []string {
	for _, kv := range env {
		if k, _, ok := strings.Cut(kv, "="); ok && k == logEnvVar {
			return env
		}
	}
	return append(slices.Clone(env), logEnvVar+"="+defaultLogFilter)
}
