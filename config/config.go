// Package config holds the host binary's settings, bound to flags and
// KEYFALL_* environment variables through ff.
package config

import (
	"errors"
	"flag"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/peterbourgon/ff/v3"

	"github.com/lixenwraith/keyfall/difficulty"
	"github.com/lixenwraith/keyfall/leaderboard"
)

// EnvPrefix is prepended to upper-cased flag names, e.g. KEYFALL_NO_SAVE
const EnvPrefix = "KEYFALL"

// ErrInvalidVolume is returned when the volume is outside [0, 1]
var ErrInvalidVolume = errors.New("volume must be between 0 and 1")

// Config is the host configuration
type Config struct {
	LeaderboardPath string
	TiersPath       string
	Audio           bool
	Volume          float64
	Debug           bool
	LogDir          string
	NoSave          bool
}

// Default returns the settings used when no flag or variable is given
func Default() Config {
	return Config{
		LeaderboardPath: "leaderboard.json",
		Audio:           true,
		Volume:          0.5,
		LogDir:          "logs",
	}
}

// RegisterFlags binds c to fs, using the current values as defaults
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.LeaderboardPath, "leaderboard", c.LeaderboardPath, "leaderboard JSON file")
	fs.StringVar(&c.TiersPath, "tiers", c.TiersPath, "difficulty tier TOML file (built-in tiers if empty)")
	fs.BoolVar(&c.Audio, "audio", c.Audio, "enable sound effects")
	fs.Float64Var(&c.Volume, "volume", c.Volume, "master volume, 0 to 1")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "write debug log and show metrics")
	fs.StringVar(&c.LogDir, "log-dir", c.LogDir, "directory for the debug log")
	fs.BoolVar(&c.NoSave, "no-save", c.NoSave, "keep scores in memory only")
}

// Options are the ff parse options shared by Parse and the host's root command
func Options() []ff.Option {
	return []ff.Option{ff.WithEnvVarPrefix(EnvPrefix)}
}

// Parse reads args, then KEYFALL_* variables for flags not set on the command line
func Parse(fs *flag.FlagSet, args []string) error {
	return ff.Parse(fs, args, Options()...)
}

// Validate reports settings the host cannot run with
func (c Config) Validate() error {
	if c.Volume < 0 || c.Volume > 1 {
		return fmt.Errorf("%v: %w", c.Volume, ErrInvalidVolume)
	}
	if !c.NoSave && c.LeaderboardPath == "" {
		return errors.New("leaderboard path is empty")
	}
	return nil
}

// Tiers returns the built-in table or the one loaded from TiersPath
func (c Config) Tiers() (difficulty.Table, error) {
	if c.TiersPath == "" {
		return difficulty.Default(), nil
	}
	return difficulty.Load(c.TiersPath)
}

// Store returns the leaderboard backend selected by NoSave
func (c Config) Store(logger *log.Logger) leaderboard.Store {
	if c.NoSave {
		return leaderboard.NewMemoryStore()
	}
	return leaderboard.NewFileStore(c.LeaderboardPath, logger)
}
