// Package controlbar renders the playback bar: phase, progress through the
// step sequence, speed and the input settings.
package controlbar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/sortviz/internal/input"
	"github.com/llehouerou/sortviz/internal/playback"
	"github.com/llehouerou/sortviz/internal/ui"
	"github.com/llehouerou/sortviz/internal/ui/layout"
	"github.com/llehouerou/sortviz/internal/ui/render"
	"github.com/llehouerou/sortviz/internal/ui/styles"
)

// Height is the bar height including its border.
const Height = ui.ControlBarHeight

const (
	filledBlock = "━"
	emptyBlock  = "─"
	separator   = "   "
)

// State holds everything needed to render the bar.
type State struct {
	Phase    playback.Phase
	Index    int
	Len      int
	Speed    int
	Delay    time.Duration
	Mode     input.Mode
	Range    int
	InputLen int
}

// NewState reads the bar state from a controller.
func NewState(c playback.Controller, mode input.Mode, valueRange int) State {
	return State{
		Phase:    c.Phase(),
		Index:    c.Index(),
		Len:      c.Len(),
		Speed:    c.Speed(),
		Delay:    c.Delay(),
		Mode:     mode,
		Range:    valueRange,
		InputLen: len(c.Input()),
	}
}

// Symbol returns the glyph for a phase.
func Symbol(p playback.Phase) string {
	switch p {
	case playback.PhasePlaying:
		return "▶"
	case playback.PhasePaused:
		return "⏸"
	case playback.PhaseComplete:
		return "✓"
	default:
		return "■"
	}
}

// Counter formats the 1-based step position, "Step 3 of 1,204".
func Counter(index, length int) string {
	if length == 0 {
		return "No steps"
	}
	return fmt.Sprintf("Step %s of %s", humanize.Comma(int64(index+1)), humanize.Comma(int64(length)))
}

// SpeedLabel formats the speed with its delay, "speed +2 · 167ms".
func SpeedLabel(speed int, delay time.Duration) string {
	return fmt.Sprintf("speed %+d · %s", speed, delay.Round(time.Millisecond))
}

// Settings formats the input settings, "random · range 20".
func Settings(s State) string {
	if s.Mode == input.ModeExplicit {
		return fmt.Sprintf("explicit · %s values", humanize.Comma(int64(s.InputLen)))
	}
	return fmt.Sprintf("random · range %d", s.Range)
}

// Render returns the bordered bar for width columns.
func Render(s State, width int) string {
	inner := max(width-6, 0)
	st := styles.T().S()

	status := statusStyle(s.Phase).Render(Symbol(s.Phase))
	counter := Counter(s.Index, s.Len)
	speed := SpeedLabel(s.Speed, s.Delay)

	right := speed
	if !layout.IsNarrowMode(width) {
		right = Settings(s) + separator + speed
	}

	fixed := lipgloss.Width(status) + 2 + lipgloss.Width(counter) + lipgloss.Width(separator)*2 + lipgloss.Width(right)
	barWidth := inner - fixed

	var content string
	if barWidth < ui.MinProgressBarWidth {
		content = render.Truncate(counter+separator+speed, max(inner-lipgloss.Width(status)-2, 1))
		content = status + "  " + st.Base.Render(content)
	} else {
		content = status + "  " + st.Base.Render(counter) + separator +
			progress(s.Index, s.Len, barWidth) + separator + st.Muted.Render(right)
	}

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().Border).
		Padding(0, 2).
		Width(max(width-2, 0)).
		Render(content)
}

// progress renders how far index is through a sequence of length steps.
func progress(index, length, width int) string {
	t := styles.T()
	var ratio float64
	if length > 1 {
		ratio = float64(index) / float64(length-1)
	}
	filled := min(int(float64(width)*ratio), width)

	return lipgloss.NewStyle().Foreground(t.Primary).Render(strings.Repeat(filledBlock, filled)) +
		lipgloss.NewStyle().Foreground(t.FgSubtle).Render(strings.Repeat(emptyBlock, width-filled))
}

func statusStyle(p playback.Phase) lipgloss.Style {
	t := styles.T()
	switch p {
	case playback.PhasePlaying:
		return lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	case playback.PhaseComplete:
		return lipgloss.NewStyle().Foreground(t.Success).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(t.FgMuted)
	}
}
