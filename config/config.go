// Package config holds the showroom's runtime settings and binds them to
// command-line flags.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the showroom settings
type Config struct {
	InventoryPath string // TOML inventory file, empty for the built-in lineup
	SnapshotPath  string // JSON snapshot restored on start and written on exit, empty to disable
	Step          int    // Speed change per key press
	Capacity      int    // Garage capacity (0 = unlimited)

	WindowWidth  int
	WindowHeight int
	Title        string
}

// Default returns the default settings
func Default() *Config {
	return &Config{
		Step:         5,
		Capacity:     0,
		WindowWidth:  640,
		WindowHeight: 480,
		Title:        "Showroom",
	}
}

// AddFlags registers the settings on a flag set, using the current values as defaults
func (c *Config) AddFlags(flagSet *pflag.FlagSet) {
	flagSet.StringVarP(&c.InventoryPath, "inventory", "i", c.InventoryPath, "path to TOML inventory file (default: built-in lineup)")
	flagSet.StringVarP(&c.SnapshotPath, "snapshot", "s", c.SnapshotPath, "path to JSON snapshot to restore and save on exit")
	flagSet.IntVar(&c.Step, "step", c.Step, "speed change per key press")
	flagSet.IntVar(&c.Capacity, "capacity", c.Capacity, "garage capacity (0 = unlimited)")
	flagSet.IntVar(&c.WindowWidth, "width", c.WindowWidth, "window width in pixels")
	flagSet.IntVar(&c.WindowHeight, "height", c.WindowHeight, "window height in pixels")
	flagSet.StringVar(&c.Title, "title", c.Title, "window title")
}

// Parse builds a validated config from command-line arguments (without the program name).
// Returns pflag.ErrHelp when --help is given.
func Parse(args []string) (*Config, error) {
	cfg := Default()

	flagSet := pflag.NewFlagSet("showroom", pflag.ContinueOnError)
	cfg.AddFlags(flagSet)
	if err := flagSet.Parse(args); err != nil {
		return nil, err
	}
	if rest := flagSet.Args(); len(rest) > 0 {
		return nil, fmt.Errorf("%w: unexpected argument: %s", ErrInvalidConfig, rest[0])
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings for values the showroom cannot run with
func (c *Config) Validate() error {
	if c.Step == 0 {
		return fmt.Errorf("%w: step must not be zero", ErrInvalidConfig)
	}
	if c.Capacity < 0 {
		return fmt.Errorf("%w: capacity must not be negative, got %d", ErrInvalidConfig, c.Capacity)
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("%w: window size must be positive, got %dx%d", ErrInvalidConfig, c.WindowWidth, c.WindowHeight)
	}
	return nil
}
