package app

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/sortviz/internal/playback"
	"github.com/llehouerou/sortviz/internal/ui/controlbar"
	"github.com/llehouerou/sortviz/internal/ui/headerbar"
	"github.com/llehouerou/sortviz/internal/ui/render"
	"github.com/llehouerou/sortviz/internal/ui/styles"
)

const keyHints = "? help · space play · ←/→ step · r reset · tab algorithm · i numbers · q quit"

// View renders the application UI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	chart := styles.PanelStyle(m.ctrl.Phase() == playback.PhasePlaying).
		Render(m.chart.View())

	sections := []string{
		render.Pad(headerbar.Render(m.algorithm, m.width), m.width),
		"",
		chart,
		m.renderNote(),
		m.renderStatus(),
		controlbar.Render(controlbar.NewState(m.ctrl, m.mode, m.valueRange), m.width),
	}
	return m.popups.View(strings.Join(sections, "\n"))
}

// renderNote narrates the current step, or announces completion.
func (m Model) renderNote() string {
	cur, ok := m.ctrl.Current()
	if !ok {
		return render.Pad("", m.width)
	}

	t := styles.T()
	if m.ctrl.Phase() == playback.PhaseComplete {
		msg := fmt.Sprintf(" Sorted with %s in %s steps", m.algorithm, humanize.Comma(int64(m.ctrl.Len())))
		return render.Pad(styles.ApplyBoldGradient(render.Truncate(msg, m.width), t.Primary, t.Secondary), m.width)
	}

	line := " " + controlbar.Counter(m.ctrl.Index(), m.ctrl.Len())
	if cur.Note != "" {
		line += ": " + render.Sanitize(cur.Note)
	}
	return t.S().Base.Render(render.TruncateAndPad(line, m.width))
}

// renderStatus shows the last error or notice, or the key hints.
func (m Model) renderStatus() string {
	s := styles.T().S()
	switch {
	case m.status == "":
		return s.Subtle.Render(render.TruncateAndPad(" "+keyHints, m.width))
	case m.statusErr:
		return s.Error.Render(render.TruncateAndPad(" "+m.status, m.width))
	default:
		return s.Warning.Render(render.TruncateAndPad(" "+m.status, m.width))
	}
}
