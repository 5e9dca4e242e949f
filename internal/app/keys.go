package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/sortviz/internal/app/handler"
	"github.com/llehouerou/sortviz/internal/app/popupctl"
	"github.com/llehouerou/sortviz/internal/keymap"
	"github.com/llehouerou/sortviz/internal/ui/styles"
)

// handleKeyMsg gives the key to the open popup, then to the global,
// playback and settings handlers in turn.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	if handled, cmd := m.popups.Update(msg); handled {
		return cmd
	}

	key := msg.String()
	k := handler.Key{Name: key, Action: m.keys.Resolve(key)}
	if k.Action == "" {
		return nil
	}
	_, cmd := handler.Chain(k,
		m.handleGlobalKeys,
		m.handlePlaybackKeys,
		m.handleSettingsKeys,
	)
	return cmd
}

func (m *Model) handleGlobalKeys(k handler.Key) handler.Result {
	switch k.Action {
	case keymap.ActionQuit:
		if err := m.ctrl.Close(); err != nil {
			m.log.Warn("close playback", "error", err)
		}
		return handler.Handled(tea.Quit)

	case keymap.ActionHelp:
		if m.popups.IsVisible(popupctl.Help) {
			return handler.HandledNoCmd
		}
		return handler.Handled(m.popups.ShowHelp())

	case keymap.ActionToggleTheme:
		styles.Use(styles.Toggled(styles.T().Name))
		m.log.Debug("theme changed", "theme", styles.T().Name)
		m.savePreferences()
		return handler.HandledNoCmd
	}
	return handler.NotHandled
}
