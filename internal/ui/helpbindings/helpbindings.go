// Package helpbindings provides a scrollable popup listing the key bindings.
package helpbindings

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/sortviz/internal/keymap"
	"github.com/llehouerou/sortviz/internal/ui"
	"github.com/llehouerou/sortviz/internal/ui/popup"
	"github.com/llehouerou/sortviz/internal/ui/render"
	"github.com/llehouerou/sortviz/internal/ui/styles"
)

var _ popup.Popup = (*Model)(nil)

// categoryOrder is the display order of binding contexts.
var categoryOrder = []string{"playback", "settings", "input", "global"}

var categoryLabels = map[string]string{
	"global":   "Global",
	"playback": "Playback",
	"settings": "Settings",
	"input":    "Number Entry",
}

// chromeHeight is the title, blank lines and footer around the list.
const chromeHeight = 4

// Model holds the state for the help popup.
type Model struct {
	ui.Base
	bindings     []keymap.Binding
	scrollOffset int
}

// New creates a help popup showing the given contexts.
func New(contexts ...string) Model {
	var m Model
	m.SetContexts(contexts)
	return m
}

// SetContexts sets which binding contexts to display and scrolls to the top.
func (m *Model) SetContexts(contexts []string) {
	m.bindings = nil
	for _, ctx := range categoryOrder {
		if slices.Contains(contexts, ctx) {
			m.bindings = append(m.bindings, keymap.ByContext(ctx)...)
		}
	}
	m.scrollOffset = 0
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "?", "esc", "q":
		return m, func() tea.Msg { return ActionMsg(Close{}) }
	case "j", "down":
		m.scrollOffset = min(m.scrollOffset+1, m.maxScroll())
	case "k", "up":
		m.scrollOffset = max(m.scrollOffset-1, 0)
	}
	return m, nil
}

// View implements popup.Popup.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	lines := m.lines()
	width := 0
	for _, line := range lines {
		width = max(width, lipgloss.Width(line))
	}

	start := min(m.scrollOffset, len(lines))
	end := min(start+m.visibleHeight(), len(lines))
	visible := make([]string, 0, end-start)
	for _, line := range lines[start:end] {
		visible = append(visible, render.Pad(line, width))
	}

	s := styles.T().S()
	var b strings.Builder
	b.WriteString(s.Title.Render("Help"))
	b.WriteString("\n\n")
	b.WriteString(strings.Join(visible, "\n"))
	b.WriteString("\n\n")
	b.WriteString(s.Subtle.Render(m.footer()))
	return b.String()
}

func (m Model) lines() []string {
	s := styles.T().S()

	keyWidth := 0
	for _, b := range m.bindings {
		keyWidth = max(keyWidth, len(keyLabel(b.Keys)))
	}

	var lines []string
	context := ""
	for _, b := range m.bindings {
		if b.Context != context {
			if context != "" {
				lines = append(lines, "")
			}
			label := categoryLabels[b.Context]
			if label == "" {
				label = b.Context
			}
			lines = append(lines,
				s.Accent.Render(label),
				s.Muted.Render(render.Separator(keyWidth+20)))
			context = b.Context
		}
		keys := keyLabel(b.Keys)
		lines = append(lines, s.Key.Render(render.Pad(keys, keyWidth))+"  "+s.Base.Render(b.Description))
	}
	return lines
}

// keyLabel joins keys for display, spelling out the space bar and
// collapsing the digit row.
func keyLabel(keys []string) string {
	if len(keys) > 2 && keys[0] == "1" {
		return keys[0] + "-" + keys[len(keys)-1]
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		names[i] = k
	}
	return strings.Join(names, ", ")
}

func (m Model) footer() string {
	if m.maxScroll() == 0 {
		return "?/esc close"
	}
	return "j/k scroll · ?/esc close"
}

func (m Model) visibleHeight() int {
	return max(m.InnerHeight(chromeHeight), 3)
}

func (m Model) maxScroll() int {
	return max(len(m.lines())-m.visibleHeight(), 0)
}
