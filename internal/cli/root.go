// Package cli defines the sortviz command line: the interactive visualizer
// as the root command and a steps command that prints a sequence.
package cli

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/llehouerou/sortviz/internal/app"
	"github.com/llehouerou/sortviz/internal/config"
	"github.com/llehouerou/sortviz/internal/input"
	"github.com/llehouerou/sortviz/internal/logging"
	"github.com/llehouerou/sortviz/internal/sorting"
	"github.com/llehouerou/sortviz/internal/state"
)

const (
	flagAlgorithm = "algorithm"
	flagSpeed     = "speed"
	flagRange     = "range"
	flagLength    = "length"
	flagInput     = "input"
	flagTheme     = "theme"
	flagConfig    = "config"
	flagLogLevel  = "log-level"
)

// ErrUnknownTheme is returned when --theme is neither dark nor light.
var ErrUnknownTheme = errors.New("unknown theme (use dark or light)")

type rootOptions struct {
	configPath string
	algorithm  string
	speed      int
	valueRange int
	length     int
	input      string
	theme      string
	logLevel   string
}

// NewRootCommand builds the sortviz command tree.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&rootOptions{})
}

func newRootCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sortviz",
		Short: "Step through sorting algorithms in the terminal",
		Long: `sortviz records every comparison, swap and placement of a sorting
algorithm and lets you play it back as an animated bar chart.

Settings are read from $XDG_CONFIG_HOME/sortviz/config.toml and ./config.toml;
flags override both.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runVisualizer(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.algorithm, flagAlgorithm, "a", "", "algorithm id or name (bubble, selection, insertion, merge, quick, heap, counting, radix, bucket)")
	f.IntVarP(&opts.speed, flagSpeed, "s", 0, "playback speed from -4 (slowest) to 4 (fastest)")
	f.IntVarP(&opts.valueRange, flagRange, "r", config.DefaultRange, "upper bound of random values (5-100)")
	f.IntVarP(&opts.length, flagLength, "n", 0, "random array length (0 means same as range)")
	f.StringVarP(&opts.input, flagInput, "i", "", `comma-separated numbers, e.g. "5,3,8,1"`)
	f.StringVar(&opts.theme, flagTheme, "", "color theme (dark or light)")

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.configPath, flagConfig, "c", "", "config file (default: XDG config then ./config.toml)")
	pf.StringVar(&opts.logLevel, flagLogLevel, "", "log level (debug, info, warn, error)")

	cmd.AddCommand(newStepsCommand())
	cmd.AddCommand(newVersionCommand())

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCommand().Execute()
}

func runVisualizer(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	logPath, err := cfg.LogPath()
	if err != nil {
		return fmt.Errorf("resolve log path: %w", err)
	}
	logger, logFile, err := logging.Open(logPath, logging.Options{Level: cfg.SlogLevel()})
	if err != nil {
		return err
	}
	defer logFile.Close()

	var store state.Interface
	if cfg.ShouldRememberSettings() {
		mgr, err := state.Open()
		if err != nil {
			// Preferences are optional; run with config values only.
			logger.Warn("state unavailable", "error", err)
		} else {
			defer mgr.Close()
			store = mgr
		}
	}

	logger.Info("starting",
		"algorithm", cfg.AlgorithmValue().ID(),
		"mode", cfg.Mode().String(),
		"speed", cfg.Speed,
		"range", cfg.Range)

	m := app.New(app.Options{
		Config:  cfg,
		State:   store,
		Logger:  logger,
		Animate: true,
	})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run visualizer: %w", err)
	}
	return nil
}

// loadConfig reads the config files and applies the flags the user set.
func loadConfig(cmd *cobra.Command, opts *rootOptions) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.configPath != "" {
		cfg, err = config.LoadFrom(opts.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if err := applyFlags(cmd, opts, cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()
	return cfg, nil
}

func applyFlags(cmd *cobra.Command, opts *rootOptions, cfg *config.Config) error {
	changed := cmd.Flags().Changed

	if changed(flagAlgorithm) {
		if _, err := sorting.ParseAlgorithm(opts.algorithm); err != nil {
			return err
		}
		cfg.Algorithm = opts.algorithm
	}
	if changed(flagSpeed) {
		cfg.Speed = opts.speed
	}
	if changed(flagRange) {
		cfg.Range = opts.valueRange
	}
	if changed(flagLength) {
		cfg.Length = opts.length
	}
	if changed(flagInput) {
		cfg.Input = opts.input
		cfg.InputMode = input.ModeExplicit.String()
	}
	if changed(flagTheme) {
		if opts.theme != config.ThemeDark && opts.theme != config.ThemeLight {
			return fmt.Errorf("%q: %w", opts.theme, ErrUnknownTheme)
		}
		cfg.Theme = opts.theme
	}
	if changed(flagLogLevel) {
		if _, err := config.ParseLogLevel(opts.logLevel); err != nil {
			return err
		}
		cfg.LogLevel = opts.logLevel
	}
	return nil
}
