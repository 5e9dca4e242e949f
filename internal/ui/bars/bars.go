// Package bars renders a step as a vertical bar chart. Bar heights ease
// between steps with a critically damped spring; colors mark compared
// indices, the marker and the sorted state.
package bars

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/sortviz/internal/step"
	"github.com/llehouerou/sortviz/internal/ui"
	"github.com/llehouerou/sortviz/internal/ui/render"
	"github.com/llehouerou/sortviz/internal/ui/styles"
)

// Eighth blocks from empty to full, for sub-cell bar tops.
var eighths = []string{" ", "▁", "▂", "▃", "▄", "▅", "▆", "▇", "█"}

const (
	full       = "█"
	holeSymbol = "·"
)

// Model is the bar chart.
type Model struct {
	ui.Base
	step     step.Step
	targets  []float64
	springs  springField
	complete bool
	animate  bool
}

// New creates an empty chart. When animate is false bars jump to their
// target heights.
func New(animate bool) Model {
	return Model{springs: newSpringField(), animate: animate}
}

// SetStep displays s. complete colors every bar as sorted.
func (m *Model) SetStep(s step.Step, complete bool) {
	m.step = s
	m.complete = complete
	m.targets = step.Normalize(s.Array)
	for i, t := range m.targets {
		m.targets[i] = max(t, 0)
	}
	m.springs.resize(m.targets)
	if !m.animate {
		m.springs.snap(m.targets)
	}
}

// Step returns the displayed step.
func (m Model) Step() step.Step {
	return m.step
}

// Animate advances the springs one frame. It returns true while bars are
// still moving.
func (m *Model) Animate() bool {
	if !m.animate {
		return false
	}
	return m.springs.advance(m.targets)
}

// Heights returns the current, possibly mid-animation, bar heights.
func (m Model) Heights() []float64 {
	return append([]float64(nil), m.springs.pos...)
}

// AuxHeight is the number of lines below the bars used for labels and
// distribution buffers.
func (m Model) AuxHeight() int {
	return len(m.auxLines(m.Width()))
}

// View renders the chart at the model size.
func (m Model) View() string {
	width, height := m.Size()
	if width <= 0 || height <= 0 {
		return ""
	}

	aux := m.auxLines(width)
	barRows := max(height-len(aux), 1)

	n := len(m.springs.pos)
	if n == 0 {
		lines := make([]string, height)
		lines[0] = render.Center(styles.T().S().Subtle.Render("No data"), width)
		for i := 1; i < height; i++ {
			lines[i] = render.Pad("", width)
		}
		return strings.Join(lines, "\n")
	}

	cw, gap := columnLayout(n, width)
	visible := min(n, (width+gap)/(cw+gap))
	barStyles := m.barStyles(visible)

	lines := make([]string, 0, height)
	for row := range barRows {
		level := barRows - 1 - row
		var b strings.Builder
		for i := range visible {
			if i > 0 && gap > 0 {
				b.WriteString(strings.Repeat(" ", gap))
			}
			cell := cellGlyph(m.springs.pos[i], level, barRows)
			b.WriteString(barStyles[i].Render(strings.Repeat(cell, cw)))
		}
		lines = append(lines, render.Pad(b.String(), width))
	}
	lines = append(lines, aux...)

	return strings.Join(lines[:min(len(lines), height)], "\n")
}

// columnLayout picks the bar width and the gap between bars for n bars in
// width columns.
func columnLayout(n, width int) (cw, gap int) {
	gap = 1
	if n*2-1 > width {
		gap = 0
	}
	cw = max((width-(n-1)*gap)/n, 1)
	return cw, gap
}

// cellGlyph returns the glyph for a bar of height h (0..Scale) at row level
// (0 = bottom) in a chart rows tall.
func cellGlyph(h float64, level, rows int) string {
	cells := h / step.Scale * float64(rows)
	fill := cells - float64(level)
	switch {
	case fill >= 1:
		return full
	case fill <= 0:
		return " "
	default:
		return eighths[int(fill*8)]
	}
}

func (m Model) barStyles(n int) []lipgloss.Style {
	t := styles.T()
	out := make([]lipgloss.Style, n)
	for i := range n {
		color := styles.BlendAt(t.BarLow, t.BarHigh, m.targets[i]/step.Scale)
		switch {
		case m.complete:
			color = t.BarSorted
		case m.step.Marker == i:
			color = t.BarMarker
		case m.step.IsHighlighted(i):
			color = t.BarCompare
		}
		out[i] = lipgloss.NewStyle().Foreground(color)
	}
	return out
}

// auxLines renders value labels when they fit under the bars, followed by
// the counting, output and bucket buffers of distribution steps.
func (m Model) auxLines(width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	if labels, ok := m.labelLine(width); ok {
		lines = append(lines, labels)
	}

	muted := styles.T().S().Muted
	if m.step.Counts != nil {
		lines = append(lines, muted.Render(render.TruncateAndPad("count  "+formatInts(m.step.Counts), width)))
	}
	if m.step.Output != nil {
		lines = append(lines, muted.Render(render.TruncateAndPad("output "+formatOutput(m.step.Output), width)))
	}
	if m.step.Buckets != nil {
		lines = append(lines, muted.Render(render.TruncateAndPad("bucket "+formatBuckets(m.step.Buckets), width)))
	}
	return lines
}

func (m Model) labelLine(width int) (string, bool) {
	n := len(m.step.Array)
	if n == 0 {
		return "", false
	}
	cw, gap := columnLayout(n, width)
	if n*(cw+gap)-gap > width {
		return "", false
	}
	var b strings.Builder
	for i, v := range m.step.Array {
		label := strconv.Itoa(v)
		if len(label) > cw {
			return "", false
		}
		if i > 0 {
			b.WriteString(strings.Repeat(" ", gap))
		}
		b.WriteString(render.Center(label, cw))
	}
	return styles.T().S().Subtle.Render(render.Pad(b.String(), width)), true
}

func formatInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func formatOutput(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		if v == step.Hole {
			parts[i] = holeSymbol
			continue
		}
		parts[i] = strconv.Itoa(v)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func formatBuckets(buckets [][]int) string {
	parts := make([]string, len(buckets))
	for i, b := range buckets {
		parts[i] = fmt.Sprintf("%d:%s", i, formatInts(b))
	}
	return strings.Join(parts, " ")
}
