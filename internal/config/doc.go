// Package config loads the optional launcher config file.
//
// An erun.toml in the workspace root can point the launcher at a different
// cargo binary, change the feature set of the release build, or relocate
// the daemon artifact. Without the file, built-in defaults apply.
package config
