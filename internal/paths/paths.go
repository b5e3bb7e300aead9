package paths

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (

	// Database directory handed to the daemon. Relative to the workspace
	// root, which the launcher enters before starting the daemon.
	DBDir = "./db1"

	// Release artifact produced by the build, relative to the workspace root.
	DaemonBin = "target/release/electrs"

	// Directory name for the daemon's data directory under the home
	// directory. This is where bitcoind keeps its block data.
	daemonDirName = ".bitcoin"
)

// Returned when the home directory cannot be resolved.
var ErrNoHome = errors.New("home directory is not set")

// Path to the daemon's data directory.
//
//	Linux:   $HOME/.bitcoin
//	macOS:   $HOME/.bitcoin
//
// The directory is created and owned by the daemon; the launcher only
// derives the path.
func DaemonDir() (string, error) {
	if xdg.Home == "" {
		return "", ErrNoHome
	}
	return filepath.Join(xdg.Home, daemonDirName), nil
}

// Path to the workspace root: the directory containing the running
// executable, with symlinks resolved.
//
// Anchoring on the executable rather than the caller's working directory
// keeps the derived paths identical no matter where the launcher is invoked
// from.
func Workspace() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}
