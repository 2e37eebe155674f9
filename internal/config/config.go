// Package config handles configuration loading and defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Default values.
const (
	DefaultTheme     = "classic"
	DefaultCharLimit = 80
	DefaultLogLevel  = "info"

	configFileName = "config.toml"
)

// Config holds the full configuration for tick.
type Config struct {
	// Appearance
	Theme     string `toml:"theme"`      // classic, neon, mono
	CharLimit int    `toml:"char_limit"` // max title length in runes

	// Logging (off unless log_file is set; stdout belongs to the TUI)
	LogFile  string `toml:"log_file"`
	LogLevel string `toml:"log_level"` // debug, info, warn, error
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Theme:     DefaultTheme,
		CharLimit: DefaultCharLimit,
		LogLevel:  DefaultLogLevel,
	}
}

// Path returns the default config file location, ~/.tick/config.toml.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home: %w", err)
	}
	return filepath.Join(home, ".tick", configFileName), nil
}

// Load reads the TOML file at path. A missing file yields the
// defaults; a malformed file is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	cfg.normalize()
	return cfg, nil
}

// normalize falls back to defaults for out-of-range values rather
// than rejecting the file.
func (c *Config) normalize() {
	switch c.Theme {
	case "classic", "neon", "mono":
	default:
		c.Theme = DefaultTheme
	}
	// the store clamps titles at 80 runes; a larger input limit
	// would let the user type text that silently shrinks on commit
	if c.CharLimit < 1 || c.CharLimit > DefaultCharLimit {
		c.CharLimit = DefaultCharLimit
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		c.LogLevel = DefaultLogLevel
	}
}
