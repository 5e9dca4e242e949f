package app

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/sortviz/internal/app/handler"
	"github.com/llehouerou/sortviz/internal/app/popupctl"
	"github.com/llehouerou/sortviz/internal/errmsg"
	"github.com/llehouerou/sortviz/internal/input"
	"github.com/llehouerou/sortviz/internal/keymap"
	"github.com/llehouerou/sortviz/internal/sorting"
	"github.com/llehouerou/sortviz/internal/ui/textinput"
)

// rangeStep is how much one key press moves the random value range.
const rangeStep = 5

func (m *Model) handleSettingsKeys(k handler.Key) handler.Result {
	switch k.Action {
	case keymap.ActionNextAlgorithm:
		return handler.Handled(m.selectAlgorithm(m.algorithm.Next()))
	case keymap.ActionPrevAlgorithm:
		return handler.Handled(m.selectAlgorithm(m.algorithm.Prev()))
	case keymap.ActionSelectAlgorithm:
		n, err := strconv.Atoi(k.Name)
		if err != nil || !sorting.Algorithm(n-1).Valid() {
			return handler.HandledNoCmd
		}
		return handler.Handled(m.selectAlgorithm(sorting.Algorithm(n - 1)))
	case keymap.ActionRangeUp:
		return handler.Handled(m.changeRange(+rangeStep))
	case keymap.ActionRangeDown:
		return handler.Handled(m.changeRange(-rangeStep))
	case keymap.ActionEditInput:
		return handler.Handled(m.popups.ShowInput(input.Format(m.ctrl.Input()), m.recentInputs()))
	case keymap.ActionRandomInput:
		m.mode = input.ModeRandom
		m.clearStatus()
		cmd := m.load()
		m.savePreferences()
		return handler.Handled(cmd)
	}
	return handler.NotHandled
}

// selectAlgorithm switches algorithm and rebuilds the sequence from the
// same input mode. An explicit input the new algorithm cannot sort keeps
// the current algorithm.
func (m *Model) selectAlgorithm(a sorting.Algorithm) tea.Cmd {
	if a == m.algorithm {
		return nil
	}
	if m.mode == input.ModeExplicit {
		if err := input.Validate(a, m.explicit); err != nil {
			m.setError(errmsg.Format(errmsg.OpInputValidate, err))
			return nil
		}
	}
	m.algorithm = a
	m.clearStatus()
	cmd := m.load()
	m.savePreferences()
	return cmd
}

// changeRange moves the random value range. Random sequences are rebuilt;
// explicit ones keep their values.
func (m *Model) changeRange(delta int) tea.Cmd {
	r := input.ClampRange(m.valueRange + delta)
	if r == m.valueRange {
		return nil
	}
	m.valueRange = r
	m.savePreferences()
	if m.mode != input.ModeRandom {
		m.setStatus("Range " + strconv.Itoa(r) + " applies to random input (g)")
		return nil
	}
	m.clearStatus()
	return m.load()
}

// handleInputResult applies text typed in the number entry. Malformed text
// falls back to random values; values the algorithm cannot sort are
// rejected and the current sequence stays.
func (m *Model) handleInputResult(r textinput.Result) tea.Cmd {
	m.popups.Hide(popupctl.Input)
	if r.Canceled {
		return nil
	}

	values, err := input.Parse(r.Text)
	if err != nil {
		m.log.Warn("malformed input, using random values", "text", r.Text, "error", err)
		m.setError(errmsg.Format(errmsg.OpInputParse, err))
		m.mode = input.ModeRandom
		cmd := m.load()
		m.savePreferences()
		return cmd
	}
	if err := input.Validate(m.algorithm, values); err != nil {
		m.setError(errmsg.Format(errmsg.OpInputValidate, err))
		return nil
	}

	m.mode = input.ModeExplicit
	m.explicit = values
	m.clearStatus()
	m.rememberInput(input.Format(values))
	cmd := m.load()
	m.savePreferences()
	return cmd
}
