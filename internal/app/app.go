// Package app is the root bubbletea model. It owns the playback controller,
// turns key presses into controller operations and renders the chart, the
// step narration and the control bar.
package app

import (
	"log/slog"
	"math/rand/v2"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/sortviz/internal/app/popupctl"
	"github.com/llehouerou/sortviz/internal/config"
	"github.com/llehouerou/sortviz/internal/errmsg"
	"github.com/llehouerou/sortviz/internal/input"
	"github.com/llehouerou/sortviz/internal/keymap"
	"github.com/llehouerou/sortviz/internal/logging"
	"github.com/llehouerou/sortviz/internal/playback"
	"github.com/llehouerou/sortviz/internal/sorting"
	"github.com/llehouerou/sortviz/internal/state"
	"github.com/llehouerou/sortviz/internal/ui/bars"
	"github.com/llehouerou/sortviz/internal/ui/styles"
)

// Options configures New.
type Options struct {
	Config    *config.Config
	State     state.Interface // nil disables persistence
	Logger    *slog.Logger
	Scheduler playback.Scheduler
	Rand      *rand.Rand
	Animate   bool
}

// Model is the root application model.
type Model struct {
	ctrl     playback.Controller
	sub      *playback.Subscription
	store    state.Interface
	remember bool
	log      *slog.Logger
	keys     *keymap.Resolver
	popups   *popupctl.Manager
	chart    bars.Model
	rng      *rand.Rand

	algorithm  sorting.Algorithm
	mode       input.Mode
	explicit   []int
	valueRange int
	length     int

	animate   bool
	animating bool

	status    string
	statusErr bool

	width, height int
}

// New builds the model and loads the first sequence. Saved preferences
// override the configuration when remembering is enabled.
func New(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}
	sched := opts.Scheduler
	if sched == nil {
		sched = playback.RealScheduler()
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) //nolint:gosec // visual data only
	}

	s := settingsFrom(cfg)
	remember := opts.State != nil && cfg.ShouldRememberSettings()
	var prefsErr error
	if remember {
		var prefs *state.Preferences
		prefs, prefsErr = opts.State.GetPreferences()
		if prefsErr != nil {
			log.Warn("preferences unavailable", "error", prefsErr)
		}
		s.overlay(prefs)
	}
	styles.Use(s.theme)

	ctrl := playback.New(
		playback.WithScheduler(sched),
		playback.WithSpeed(s.speed),
		playback.WithLogger(log.With("component", "playback")),
	)

	m := Model{
		ctrl:       ctrl,
		sub:        ctrl.Subscribe(),
		store:      opts.State,
		remember:   remember,
		log:        log,
		keys:       keymap.NewResolver(keymap.ForContexts(keymap.Contexts...)),
		popups:     popupctl.New(),
		chart:      bars.New(opts.Animate),
		rng:        rng,
		algorithm:  s.algorithm,
		mode:       input.ModeRandom,
		valueRange: s.valueRange,
		length:     s.length,
		animate:    opts.Animate,
	}

	if prefsErr != nil {
		m.setError(errmsg.Format(errmsg.OpPrefsLoad, prefsErr))
	}
	if s.mode == input.ModeExplicit {
		m.useExplicitText(s.input)
	}
	m.load()
	return m
}

// useExplicitText switches to explicit mode when text parses and suits the
// algorithm. Otherwise the model stays in random mode and reports why.
func (m *Model) useExplicitText(text string) {
	values, err := input.Parse(text)
	if err != nil {
		m.log.Warn("saved input unusable, using random values", "text", text, "error", err)
		m.setError(errmsg.Format(errmsg.OpInputParse, err))
		return
	}
	if err := input.Validate(m.algorithm, values); err != nil {
		m.setError(errmsg.Format(errmsg.OpInputValidate, err))
		return
	}
	m.mode = input.ModeExplicit
	m.explicit = values
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{WatchEvents(m.sub)}
	if m.animating {
		cmds = append(cmds, FrameCmd())
	}
	return tea.Batch(cmds...)
}

// Controller exposes the playback controller.
func (m Model) Controller() playback.Controller {
	return m.ctrl
}

// Algorithm returns the selected algorithm.
func (m Model) Algorithm() sorting.Algorithm {
	return m.algorithm
}

// Mode returns the input mode of the current sequence.
func (m Model) Mode() input.Mode {
	return m.mode
}

// Range returns the upper bound of random values.
func (m Model) Range() int {
	return m.valueRange
}

// Status returns the status line text.
func (m Model) Status() string {
	return m.status
}

// source builds the input source for the current settings.
func (m *Model) source() input.Source {
	if m.mode == input.ModeExplicit {
		return input.Explicit(m.explicit)
	}
	return input.NewRandom(m.rng, m.length, m.valueRange)
}

// load replaces the sequence with one built from the current settings.
func (m *Model) load() tea.Cmd {
	m.ctrl.Load(m.algorithm, m.source())
	m.log.Info("sequence loaded",
		"algorithm", m.algorithm.ID(),
		"mode", m.mode.String(),
		"steps", m.ctrl.Len())
	return m.syncChart()
}

// syncChart shows the controller's current step and starts the animation
// loop when needed.
func (m *Model) syncChart() tea.Cmd {
	cur, ok := m.ctrl.Current()
	if !ok {
		return nil
	}
	m.chart.SetStep(cur, m.ctrl.Phase() == playback.PhaseComplete)
	if !m.animate || m.animating {
		return nil
	}
	m.animating = true
	return FrameCmd()
}

func (m *Model) setError(msg string) {
	m.status = msg
	m.statusErr = true
}

func (m *Model) setStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) clearStatus() {
	m.status = ""
	m.statusErr = false
}
