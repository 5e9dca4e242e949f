package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/sortviz/internal/input"
	"github.com/llehouerou/sortviz/internal/playback"
	"github.com/llehouerou/sortviz/internal/sorting"
)

const appName = "sortviz"

// Defaults applied before any file is loaded.
const (
	DefaultAlgorithm = "bubble"
	DefaultSpeed     = 0
	DefaultRange     = 5
	DefaultTheme     = ThemeDark
	DefaultLogLevel  = "info"
)

// Theme names.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

type Config struct {
	Algorithm string `koanf:"algorithm"`  // algorithm id or display name
	Speed     int    `koanf:"speed"`      // -4..4
	Range     int    `koanf:"range"`      // 5..100, upper bound of random values
	Length    int    `koanf:"length"`     // random array length, 0 means same as range
	InputMode string `koanf:"input_mode"` // "random" or "explicit"
	Input     string `koanf:"input"`      // comma-separated values for explicit mode
	Theme     string `koanf:"theme"`      // "dark" or "light"
	LogLevel  string `koanf:"log_level"`  // debug, info, warn, error
	LogFile   string `koanf:"log_file"`   // defaults to the XDG state dir

	// Persist theme, algorithm, speed and range across sessions (default: true)
	RememberSettings *bool `koanf:"remember_settings"`
}

// Default returns a configuration with every field at its default.
func Default() *Config {
	return &Config{
		Algorithm: DefaultAlgorithm,
		Speed:     DefaultSpeed,
		Range:     DefaultRange,
		InputMode: input.ModeRandom.String(),
		Theme:     DefaultTheme,
		LogLevel:  DefaultLogLevel,
	}
}

// Load reads the config files in priority order (last wins) and normalizes
// the result. Missing files are skipped.
func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom is Load over an explicit list of paths.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("load %s: %w", path, err)
			}
		}
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.Normalize()
	return cfg, nil
}

// Normalize clamps numeric fields, lowercases enumerations and replaces
// unknown values with defaults.
func (c *Config) Normalize() {
	c.Speed = playback.ClampSpeed(c.Speed)
	c.Range = input.ClampRange(c.Range)
	c.Length = max(c.Length, 0)

	if _, err := sorting.ParseAlgorithm(c.Algorithm); err != nil {
		c.Algorithm = DefaultAlgorithm
	}

	c.InputMode = strings.ToLower(strings.TrimSpace(c.InputMode))
	if _, err := input.ParseMode(c.InputMode); err != nil {
		c.InputMode = input.ModeRandom.String()
	}

	c.Theme = strings.ToLower(strings.TrimSpace(c.Theme))
	if c.Theme != ThemeDark && c.Theme != ThemeLight {
		c.Theme = DefaultTheme
	}

	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		c.LogLevel = DefaultLogLevel
	}

	if c.LogFile != "" {
		c.LogFile = expandPath(c.LogFile)
	}
}

// AlgorithmValue returns the configured algorithm.
func (c *Config) AlgorithmValue() sorting.Algorithm {
	a, err := sorting.ParseAlgorithm(c.Algorithm)
	if err != nil {
		return sorting.Bubble
	}
	return a
}

// Mode returns the configured input mode.
func (c *Config) Mode() input.Mode {
	m, err := input.ParseMode(c.InputMode)
	if err != nil {
		return input.ModeRandom
	}
	return m
}

// ShouldRememberSettings reports whether preferences are persisted.
func (c *Config) ShouldRememberSettings() bool {
	return c.RememberSettings == nil || *c.RememberSettings
}

// SlogLevel returns the configured log level.
func (c *Config) SlogLevel() slog.Level {
	lvl, _ := ParseLogLevel(c.LogLevel)
	return lvl
}

// LogPath returns the log file path, creating its directory if needed.
func (c *Config) LogPath() (string, error) {
	if c.LogFile != "" {
		return c.LogFile, nil
	}
	return xdg.StateFile(filepath.Join(appName, appName+".log"))
}

var errUnknownLevel = errors.New("unknown log level")

// ParseLogLevel parses debug, info, warn or error.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: %q", errUnknownLevel, s)
	}
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. $XDG_CONFIG_HOME/sortviz/config.toml
	paths = append(paths, filepath.Join(xdg.ConfigHome, appName, "config.toml"))

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
