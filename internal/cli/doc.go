// Parses flags and configures logging for the erun launcher.
//
// The launcher accepts the following flags:
//
//	-q, --quiet     Suppress informational output.
//	-v, --verbose   Enable verbose output.
//	-d, --debug     Enable debug output.
//	-C, --root      Workspace root override.
//
// The first positional argument selects the target network; everything after
// it is forwarded to the daemon verbatim, flags included. Flags override
// build-time defaults set via linker flags. After parsing, the global logger
// is reconfigured to reflect the final level before the pipeline starts.
package cli
