// Provides the fixed path layout for the launcher and the daemon.
//
// The database directory and the daemon artifact are relative to the
// workspace root; the daemon's data directory lives under the invoking
// user's home directory. None of these are caller-overridable: further
// daemon configuration goes through forwarded arguments instead.
package paths
