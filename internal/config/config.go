package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/quarryhq/erun/internal/paths"
	"github.com/quarryhq/erun/internal/toolchain"
)

// Name of the launcher config file, looked up in the workspace root.
const FileName = "erun.toml"

// Returned when the config file cannot be read or fails validation.
var ErrConfig = errors.New("invalid launcher config")

// Tunes the build step of the launch.
//
// The daemon's own flags (network, database directory, daemon directory)
// are fixed by the launcher and are deliberately not configurable here;
// anything else goes through forwarded arguments.
type Config struct {
	Cargo     string   `toml:"cargo" validate:"required"`      // Cargo binary used for formatting and building.
	Features  []string `toml:"features"`                       // Optional cargo features enabled for the release build.
	DaemonBin string   `toml:"daemon_bin" validate:"required"` // Daemon artifact, relative to the workspace root.
}

// Returns the built-in defaults: stock cargo, the process-metrics feature,
// and the artifact path cargo writes the release build to.
func Default() *Config {
	return &Config{
		Cargo:     toolchain.DefaultCargoBin,
		Features:  []string{"metrics_process"},
		DaemonBin: paths.DaemonBin,
	}
}

// Loads the launcher config from the given path.
//
// A missing file is not an error: the defaults apply. Keys present in the
// file override the corresponding defaults; the merged result is validated
// before use.
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	return cfg, nil
}
