package app

import (
	"context"
	"time"

	"github.com/llehouerou/sortviz/internal/config"
	"github.com/llehouerou/sortviz/internal/errmsg"
	"github.com/llehouerou/sortviz/internal/input"
	"github.com/llehouerou/sortviz/internal/playback"
	"github.com/llehouerou/sortviz/internal/sorting"
	"github.com/llehouerou/sortviz/internal/state"
	"github.com/llehouerou/sortviz/internal/ui/styles"
)

const historyTimeout = 2 * time.Second

// settings are the user choices that survive a restart.
type settings struct {
	algorithm  sorting.Algorithm
	speed      int
	valueRange int
	length     int
	mode       input.Mode
	input      string
	theme      string
}

func settingsFrom(cfg *config.Config) settings {
	return settings{
		algorithm:  cfg.AlgorithmValue(),
		speed:      cfg.Speed,
		valueRange: cfg.Range,
		length:     cfg.Length,
		mode:       cfg.Mode(),
		input:      cfg.Input,
		theme:      cfg.Theme,
	}
}

// overlay applies saved preferences. Unset or unknown values keep the
// configured ones.
func (s *settings) overlay(p *state.Preferences) {
	if p == nil {
		return
	}
	if a, err := sorting.ParseAlgorithm(p.Algorithm); err == nil {
		s.algorithm = a
	}
	s.speed = playback.ClampSpeed(p.Speed)
	if p.Range > 0 {
		s.valueRange = input.ClampRange(p.Range)
	}
	if mode, err := input.ParseMode(p.InputMode); err == nil && p.InputMode != "" {
		s.mode = mode
	}
	if p.Input != "" {
		s.input = p.Input
	}
	if p.Theme == styles.NameDark || p.Theme == styles.NameLight {
		s.theme = p.Theme
	}
}

// savePreferences queues the current settings for a debounced write.
func (m *Model) savePreferences() {
	if !m.remember {
		return
	}
	m.store.SavePreferences(state.Preferences{
		Algorithm: m.algorithm.ID(),
		Speed:     m.ctrl.Speed(),
		Range:     m.valueRange,
		InputMode: m.mode.String(),
		Input:     input.Format(m.explicit),
		Theme:     styles.T().Name,
	})
}

// rememberInput records text in the input history.
func (m *Model) rememberInput(text string) {
	if !m.remember {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), historyTimeout)
	defer cancel()
	if err := m.store.AddRecentInput(ctx, text); err != nil {
		m.log.Warn("input history not saved", "error", err)
	}
}

// recentInputs returns the input history, newest first.
func (m *Model) recentInputs() []string {
	if !m.remember {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), historyTimeout)
	defer cancel()
	recent, err := m.store.RecentInputs(ctx, state.MaxRecentInputs)
	if err != nil {
		m.log.Warn("input history unavailable", "error", err)
		m.setError(errmsg.Format(errmsg.OpInputHistory, err))
		return nil
	}
	return recent
}
