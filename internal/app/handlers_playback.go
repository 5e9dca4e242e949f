package app

import (
	"github.com/llehouerou/sortviz/internal/app/handler"
	"github.com/llehouerou/sortviz/internal/keymap"
)

func (m *Model) handlePlaybackKeys(k handler.Key) handler.Result {
	switch k.Action {
	case keymap.ActionPlayPause:
		m.ctrl.Toggle()
	case keymap.ActionStepForward:
		m.ctrl.StepForward()
	case keymap.ActionStepBackward:
		m.ctrl.StepBackward()
	case keymap.ActionReset:
		m.ctrl.Reset()
	case keymap.ActionSpeedUp:
		m.changeSpeed(+1)
	case keymap.ActionSpeedDown:
		m.changeSpeed(-1)
	default:
		return handler.NotHandled
	}
	return handler.Handled(m.syncChart())
}

func (m *Model) changeSpeed(delta int) {
	before := m.ctrl.Speed()
	m.ctrl.SetSpeed(before + delta)
	if m.ctrl.Speed() != before {
		m.savePreferences()
	}
}
