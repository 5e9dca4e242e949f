package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/sortviz/internal/app/popupctl"
	"github.com/llehouerou/sortviz/internal/playback"
	"github.com/llehouerou/sortviz/internal/ui/action"
	"github.com/llehouerou/sortviz/internal/ui/helpbindings"
	"github.com/llehouerou/sortviz/internal/ui/layout"
	"github.com/llehouerou/sortviz/internal/ui/textinput"
)

// Update handles messages and returns the updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.handleWindowSize(msg)
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKeyMsg(msg)

	case action.Msg:
		return m, m.handleAction(msg)

	case StepMsg, SpeedMsg:
		return m, tea.Batch(m.syncChart(), WatchEvents(m.sub))

	case SequenceMsg:
		m.log.Debug("sequence event", "algorithm", msg.Algorithm.ID(), "steps", msg.Len)
		return m, tea.Batch(m.syncChart(), WatchEvents(m.sub))

	case PhaseMsg:
		if msg.Current == playback.PhaseComplete {
			m.log.Info("sorted", "algorithm", m.algorithm.ID(), "steps", m.ctrl.Len())
		}
		return m, tea.Batch(m.syncChart(), WatchEvents(m.sub))

	case EventsClosedMsg:
		return m, nil

	case FrameMsg:
		if m.chart.Animate() {
			return m, FrameCmd()
		}
		m.animating = false
		return m, nil
	}

	if handled, cmd := m.popups.Update(msg); handled {
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleWindowSize(msg tea.WindowSizeMsg) {
	m.width = msg.Width
	m.height = msg.Height
	m.chart.SetSize(layout.ChartWidth(msg.Width), layout.ChartHeight(msg.Height, layout.DefaultContentOpts()))
	m.popups.SetSize(msg.Width, msg.Height)
}

// handleAction handles results reported by popups.
func (m *Model) handleAction(msg action.Msg) tea.Cmd {
	switch a := msg.Action.(type) {
	case helpbindings.Close:
		m.popups.Hide(popupctl.Help)
		return nil
	case textinput.Result:
		return m.handleInputResult(a)
	}
	m.log.Debug("unhandled action", "source", msg.Source, "action", msg.Action.ActionType())
	return nil
}
