// Package popup frames modal content and composes it over the main view.
package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/sortviz/internal/ui/styles"
)

// frameOverhead is the horizontal and vertical space taken by the border
// and padding of a framed popup.
const (
	frameOverheadX = 6
	frameOverheadY = 4
)

// Size configures how a popup is sized relative to the screen.
type Size struct {
	WidthPct int // percentage of screen width, 0 fits content
	MaxWidth int // upper bound in columns, 0 means none
}

var (
	// SizeAuto fits the content.
	SizeAuto = Size{}
	// SizeInput is the text entry popup.
	SizeInput = Size{WidthPct: 60, MaxWidth: 72}
)

// BodySize returns the width and height left for a popup body on a screen
// of the given size.
func BodySize(screenW, screenH int, size Size) (width, height int) {
	width = screenW - 4 - frameOverheadX
	if size.WidthPct > 0 {
		width = screenW*size.WidthPct/100 - frameOverheadX
	}
	if size.MaxWidth > 0 {
		width = min(width, size.MaxWidth-frameOverheadX)
	}
	height = screenH - 4 - frameOverheadY
	return max(width, 1), max(height, 1)
}

// Frame wraps a popup body in a rounded, padded border and centers it on
// the screen.
func Frame(title, body string, screenW, screenH int, size Size) string {
	t := styles.T()
	maxW, maxH := BodySize(screenW, screenH, size)

	w := lipgloss.Width(body)
	if size.WidthPct > 0 {
		w = maxW
	}
	if title != "" {
		w = max(w, lipgloss.Width(title))
	}
	w = min(w, maxW)

	lines := strings.Split(body, "\n")
	if title != "" {
		lines = append([]string{t.S().Title.Render(title), ""}, lines...)
	}
	lines = lines[:min(len(lines), maxH)]

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderFocus).
		Padding(1, 2).
		Width(w + 4).
		Render(strings.Join(lines, "\n"))

	return Center(box, screenW, screenH)
}

// Center places pre-rendered content in the middle of the screen.
func Center(content string, screenW, screenH int) string {
	lines := strings.Split(content, "\n")
	boxW := 0
	for _, line := range lines {
		boxW = max(boxW, lipgloss.Width(line))
	}
	padTop := max((screenH-len(lines))/2, 0)
	padLeft := max((screenW-boxW)/2, 0)

	out := make([]string, 0, padTop+len(lines))
	for range padTop {
		out = append(out, "")
	}
	for _, line := range lines {
		out = append(out, strings.Repeat(" ", padLeft)+line)
	}
	return strings.Join(out, "\n")
}

// Compose draws overlay on top of base. On each line the visible span of
// the overlay replaces the same columns of the base; blank overlay lines
// leave the base untouched. Both inputs may carry ANSI styling.
func Compose(base, overlay string, width int) string {
	baseLines := strings.Split(base, "\n")

	for i, line := range strings.Split(overlay, "\n") {
		if i >= len(baseLines) {
			break
		}
		plain := ansi.Strip(line)
		trimmed := strings.TrimLeft(plain, " ")
		if strings.TrimSpace(trimmed) == "" {
			continue
		}
		start := len(plain) - len(trimmed)
		end := start + ansi.StringWidth(strings.TrimRight(trimmed, " "))

		under := baseLines[i]
		if w := ansi.StringWidth(under); w < width {
			under += strings.Repeat(" ", width-w)
		}

		prefix := ansi.Cut(under, 0, start)
		if w := ansi.StringWidth(prefix); w < start {
			prefix += strings.Repeat(" ", start-w)
		}
		composed := prefix + ansi.Cut(line, start, end)
		if end < width {
			suffix := ansi.Cut(under, end, width)
			if w := ansi.StringWidth(suffix); w < width-end {
				suffix += strings.Repeat(" ", width-end-w)
			}
			composed += suffix
		}
		baseLines[i] = composed
	}
	return strings.Join(baseLines, "\n")
}
